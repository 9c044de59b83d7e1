package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleEmployer  = "employer"
	RoleCandidate = "candidate"
)

// User is the root document of the users collection. Employers and candidates
// share it and are told apart by Role.Role.
type User struct {
	Id       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     Role               `json:"role" bson:"role"`
}

type Role struct {
	Role string   `json:"role" bson:"role"`
	Data RoleData `json:"data" bson:"data"`
}

// RoleData holds either the employer fields or the candidate fields, never both.
type RoleData struct {
	EmployerInfo  *EmployerInfo  `json:"employerInfo,omitempty" bson:"employerInfo,omitempty"`
	JobPosts      []JobPost      `json:"job_posts,omitempty" bson:"job_posts,omitempty"`
	CandidateInfo *CandidateInfo `json:"candidateInfo,omitempty" bson:"candidateInfo,omitempty"`
	Applied       []AppliedRef   `json:"applied,omitempty" bson:"applied,omitempty"`
}

var (
	ErrEmployerWithCandidateData = errors.New("employer accounts cannot carry candidate data")
	ErrCandidateWithEmployerData = errors.New("candidate accounts cannot carry employer data")
	ErrUnknownRole               = errors.New("role must be employer or candidate")
)

// Check reports whether the data payload matches the role.
func (r Role) Check() error {
	switch r.Role {
	case RoleEmployer:
		if r.Data.CandidateInfo != nil || len(r.Data.Applied) > 0 {
			return ErrEmployerWithCandidateData
		}
	case RoleCandidate:
		if r.Data.EmployerInfo != nil || len(r.Data.JobPosts) > 0 {
			return ErrCandidateWithEmployerData
		}
	default:
		return ErrUnknownRole
	}
	return nil
}

type EmployerInfo struct {
	Logo     string `json:"logo,omitempty" bson:"logo,omitempty"`
	Banner   string `json:"banner,omitempty" bson:"banner,omitempty"`
	Company  string `json:"company,omitempty" bson:"company,omitempty"`
	About    string `json:"about,omitempty" bson:"about,omitempty"`
	Industry string `json:"industry,omitempty" bson:"industry,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

type CandidateInfo struct {
	Image       string           `json:"image,omitempty" bson:"image,omitempty"`
	Banner      string           `json:"banner,omitempty" bson:"banner,omitempty"`
	Name        string           `json:"name,omitempty" bson:"name,omitempty"`
	Phone       string           `json:"phone,omitempty" bson:"phone,omitempty"`
	Designation string           `json:"designation,omitempty" bson:"designation,omitempty"`
	Location    string           `json:"location,omitempty" bson:"location,omitempty"`
	Salary      string           `json:"salary,omitempty" bson:"salary,omitempty"`
	Skills      []Skill          `json:"skills,omitempty" bson:"skills,omitempty"`
	Resume      string           `json:"resume,omitempty" bson:"resume,omitempty"`
	About       string           `json:"about,omitempty" bson:"about,omitempty"`
	Education   []Education      `json:"education,omitempty" bson:"education,omitempty"`
	Work        []WorkExperience `json:"work,omitempty" bson:"work,omitempty"`
}

// Skill mirrors an entry of the skill reference list.
type Skill struct {
	Id       string `json:"id,omitempty" bson:"id,omitempty"`
	ItemName string `json:"itemName" bson:"itemName"`
}

type Education struct {
	University string `json:"university,omitempty" bson:"university,omitempty"`
	Degree     string `json:"degree,omitempty" bson:"degree,omitempty"`
	Course     string `json:"course,omitempty" bson:"course,omitempty"`
	YearStart  string `json:"yearStart,omitempty" bson:"yearStart,omitempty"`
	YearEnd    string `json:"yearEnd,omitempty" bson:"yearEnd,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company,omitempty" bson:"company,omitempty"`
	Designation string `json:"designation,omitempty" bson:"designation,omitempty"`
	Start       string `json:"start,omitempty" bson:"start,omitempty"`
	End         string `json:"end,omitempty" bson:"end,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type AppliedRef struct {
	JobId string `json:"_jobId" bson:"_jobId"`
}

// SkillNames returns the item names of the candidate's skills.
func (c *CandidateInfo) SkillNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		names = append(names, s.ItemName)
	}
	return names
}
