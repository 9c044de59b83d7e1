package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Employee is a document of the legacy employees collection.
type Employee struct {
	Id       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Position string             `json:"position" bson:"position" validate:"required,min=5"`
	Level    EmployeeLevel      `json:"level" bson:"level"`
}

type EmployeeLevel struct {
	Level   string          `json:"level" bson:"level" validate:"required,oneof=junior mid senior"`
	Details EmployeeDetails `json:"details" bson:"details"`
}

type EmployeeDetails struct {
	JobPosts []EmployeeJobPost `json:"job_posts" bson:"job_posts"`
}

type EmployeeJobPost struct {
	JobId       primitive.ObjectID `json:"_jobId" bson:"_jobId,omitempty"`
	Designation string             `json:"designation" bson:"designation" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
}

// EmployeeUpdate carries the fields a PUT may change; nil fields are left alone.
type EmployeeUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Position *string `json:"position" validate:"omitempty,min=5"`
	Level    *string `json:"level" validate:"omitempty,oneof=junior mid senior"`
}

// Fields returns the $set document for the update, keyed by field path.
func (u EmployeeUpdate) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Position != nil {
		set["position"] = *u.Position
	}
	if u.Level != nil {
		set["level.level"] = *u.Level
	}
	return set
}
