package controllers

import (
	"context"

	"job-portal-service/internal/configs"
	"job-portal-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Database interface
type Database interface {
	Ping(ctx context.Context) error

	ListUsers(ctx context.Context) ([]models.User, error)
	ListEmployersWithJobPosts(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (primitive.ObjectID, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error)
	DeleteAllUsers(ctx context.Context) (models.WriteResult, error)
	UpdateEmployerInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)
	UpdateCandidateInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)

	AddJobPost(ctx context.Context, userID primitive.ObjectID, post models.JobPost) (models.WriteResult, error)
	FindJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (*models.JobPost, error)
	ReplaceJobPost(ctx context.Context, userID, jobID primitive.ObjectID, fields map[string]interface{}) (*models.JobPost, error)
	DeleteJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (models.WriteResult, error)
	PruneJobPostsWithoutID(ctx context.Context) (models.WriteResult, error)
	AddApplicant(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error)
	AddInvitee(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error)

	ListJobPostRows(ctx context.Context) ([]models.JobPostRow, error)
	JobsByCategory(ctx context.Context, category string) ([]models.JobPostRow, error)
	SearchJobs(ctx context.Context, search models.JobSearch) ([]models.JobPostRow, error)
	CountJobsByCategory(ctx context.Context) ([]models.CategoryCount, error)
	SearchCandidates(ctx context.Context, skills []string) ([]models.User, error)
	ListAppliedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error)
	ListInvitedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error)

	ListEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (primitive.ObjectID, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)
	AddEmployeeJobPost(ctx context.Context, id primitive.ObjectID, post models.EmployeeJobPost) (models.WriteResult, error)
	DeleteEmployee(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error)
	DeleteAllEmployees(ctx context.Context) (models.WriteResult, error)

	ListReference(ctx context.Context, kind models.ReferenceKind) ([]models.ReferenceItem, error)
	AddReference(ctx context.Context, kind models.ReferenceKind, value string) (models.ReferenceItem, error)
	ClearReference(ctx context.Context, kind models.ReferenceKind) (models.WriteResult, error)
	ListJobListings(ctx context.Context) ([]models.JobListing, error)
	AddJobListing(ctx context.Context, listing models.JobListing) (primitive.ObjectID, error)
}

var _ Database = (*configs.MongoDB)(nil)
