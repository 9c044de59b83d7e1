package models

// SignupRequest is the body of POST /api.
type SignupRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=6,max=72"`
	ConfirmPass string     `json:"confirm_pass" validate:"required,eqfield=Password"`
	Role        SignupRole `json:"role"`
}

type SignupRole struct {
	Role string     `json:"role" validate:"required,oneof=employer candidate"`
	Data SignupData `json:"data"`
}

type SignupData struct {
	EmployerInfo  *EmployerInfo  `json:"employerInfo,omitempty"`
	CandidateInfo *CandidateInfo `json:"candidateInfo,omitempty"`
}

// ToRole builds the stored role, rejecting data that belongs to the other role.
func (s SignupRole) ToRole() (Role, error) {
	role := Role{
		Role: s.Role,
		Data: RoleData{
			EmployerInfo:  s.Data.EmployerInfo,
			CandidateInfo: s.Data.CandidateInfo,
		},
	}
	return role, role.Check()
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// JobPostRequest carries the descriptive fields of a job post.
type JobPostRequest struct {
	Designation string  `json:"designation" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category"`
	Position    string  `json:"position" validate:"omitempty,oneof=temporary full-time freelance internship"`
	Setup       string  `json:"setup" validate:"omitempty,oneof=remote on-site hybrid"`
	Payment     string  `json:"payment" validate:"omitempty,oneof=monthly hourly"`
	Rate        string  `json:"rate"`
	Location    string  `json:"location"`
	MinSalary   float64 `json:"minSalary" validate:"gte=0"`
	MaxSalary   float64 `json:"maxSalary" validate:"omitempty,gtefield=MinSalary"`
	Urgent      bool    `json:"urgent"`
}

// Fields returns the descriptive fields keyed by their stored names.
func (r JobPostRequest) Fields() map[string]interface{} {
	return map[string]interface{}{
		"designation": r.Designation,
		"description": r.Description,
		"category":    r.Category,
		"position":    r.Position,
		"setup":       r.Setup,
		"payment":     r.Payment,
		"rate":        r.Rate,
		"location":    r.Location,
		"minSalary":   r.MinSalary,
		"maxSalary":   r.MaxSalary,
		"urgent":      r.Urgent,
	}
}

// JobPost builds a new post from the request; id and posting date are
// assigned by the store.
func (r JobPostRequest) JobPost() JobPost {
	return JobPost{
		Designation: r.Designation,
		Description: r.Description,
		Category:    r.Category,
		Position:    r.Position,
		Setup:       r.Setup,
		Payment:     r.Payment,
		Rate:        r.Rate,
		Location:    r.Location,
		MinSalary:   r.MinSalary,
		MaxSalary:   r.MaxSalary,
		Urgent:      r.Urgent,
	}
}

// ApplicantRequest is the body of an application or an invitation.
type ApplicantRequest struct {
	Id            string         `json:"id" validate:"required"`
	Email         string         `json:"email" validate:"required,email"`
	CandidateInfo *CandidateInfo `json:"candidateInfo"`
}

// Applicant builds the stored record for the request.
func (r ApplicantRequest) Applicant() Applicant {
	return Applicant{Id: r.Id, Email: r.Email, CandidateInfo: r.CandidateInfo}
}

type EmployeeJobPostRequest struct {
	Designation string `json:"designation" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ReferenceRequest is the body of an append to a lookup list. The value is
// read from the field named by the list's kind.
type ReferenceRequest map[string]interface{}

func (r ReferenceRequest) Value(kind ReferenceKind) (string, bool) {
	v, ok := r[kind.Field].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
