package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobPost is embedded in an employer's role.data.job_posts list.
type JobPost struct {
	JobId       primitive.ObjectID `json:"_jobId" bson:"_jobId,omitempty"`
	Designation string             `json:"designation" bson:"designation"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Position    string             `json:"position,omitempty" bson:"position,omitempty"`
	Setup       string             `json:"setup,omitempty" bson:"setup,omitempty"`
	Payment     string             `json:"payment,omitempty" bson:"payment,omitempty"`
	Rate        string             `json:"rate,omitempty" bson:"rate,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	MinSalary   float64            `json:"minSalary,omitempty" bson:"minSalary,omitempty"`
	MaxSalary   float64            `json:"maxSalary,omitempty" bson:"maxSalary,omitempty"`
	Urgent      bool               `json:"urgent" bson:"urgent"`
	DatePosted  int64              `json:"date_posted,omitempty" bson:"date_posted,omitempty"`
	// Company is only filled by listings that copy it from the employer info.
	Company    string      `json:"company,omitempty" bson:"company,omitempty"`
	Applicants []Applicant `json:"applicants,omitempty" bson:"applicants,omitempty"`
	Invited    []Applicant `json:"invited,omitempty" bson:"invited,omitempty"`
}

// Applicant is an application or invitation record stored under a job post.
type Applicant struct {
	Id            string         `json:"id" bson:"id"`
	Email         string         `json:"email" bson:"email"`
	DateApplied   int64          `json:"date_applied,omitempty" bson:"date_applied,omitempty"`
	DateInvited   int64          `json:"date_invited,omitempty" bson:"date_invited,omitempty"`
	CandidateInfo *CandidateInfo `json:"candidateInfo,omitempty" bson:"candidateInfo,omitempty"`
}

// JobPostRow is one unwound job post together with its owning user.
type JobPostRow struct {
	Id    primitive.ObjectID `json:"_id" bson:"_id"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Role  struct {
		Role string `json:"role" bson:"role"`
		Data struct {
			EmployerInfo *EmployerInfo `json:"employerInfo,omitempty" bson:"employerInfo,omitempty"`
			JobPost      JobPost       `json:"job_posts" bson:"job_posts"`
		} `json:"data" bson:"data"`
	} `json:"role" bson:"role"`
}

// EmployerJob is a job post seen from a candidate: the post merged with the
// employer's info and id, plus the candidate's own application or invitation.
type EmployerJob struct {
	JobPost      `bson:",inline"`
	EmployerInfo *EmployerInfo     `json:"employerInfo,omitempty" bson:"employerInfo,omitempty"`
	EmployerId   primitive.ObjectID `json:"employerId" bson:"employerId"`
	Record       *Applicant         `json:"record,omitempty" bson:"record,omitempty"`
}

type CategoryCount struct {
	Category string `json:"category" bson:"_id"`
	Count    int64  `json:"count" bson:"count"`
}

// JobSearch holds the optional filters of a job search; empty fields add no clause.
type JobSearch struct {
	Location    string `form:"location"`
	Designation string `form:"designation"`
	Category    string `form:"category"`
	Position    string `form:"position"`
	Setup       string `form:"setup"`
}

// JobListing is an entry of the standalone jobList collection.
type JobListing struct {
	Id          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Logo        string             `json:"logo,omitempty" bson:"logo,omitempty"`
	Banner      string             `json:"banner,omitempty" bson:"banner,omitempty"`
	Company     string             `json:"company,omitempty" bson:"company,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Designation string             `json:"designation" bson:"designation" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	DatePosted  int64              `json:"date_posted,omitempty" bson:"date_posted,omitempty"`
	Position    string             `json:"position,omitempty" bson:"position,omitempty" validate:"omitempty,oneof=temporary full-time freelance internship"`
	Urgent      bool               `json:"urgent" bson:"urgent"`
	Setup       string             `json:"setup,omitempty" bson:"setup,omitempty" validate:"omitempty,oneof=remote on-site hybrid"`
	MinSalary   float64            `json:"minSalary,omitempty" bson:"minSalary,omitempty" validate:"gte=0"`
	MaxSalary   float64            `json:"maxSalary,omitempty" bson:"maxSalary,omitempty" validate:"omitempty,gtefield=MinSalary"`
	Payment     string             `json:"payment,omitempty" bson:"payment,omitempty" validate:"omitempty,oneof=monthly hourly"`
}

// ErrJobPostNotFound is returned when the owning user exists but holds no
// job post with the requested id.
var ErrJobPostNotFound = errors.New("job post not found")

// FindJobPost scans the user's job posts for the id.
func (u *User) FindJobPost(jobId primitive.ObjectID) (*JobPost, bool) {
	for i := range u.Role.Data.JobPosts {
		if u.Role.Data.JobPosts[i].JobId == jobId {
			return &u.Role.Data.JobPosts[i], true
		}
	}
	return nil, false
}
