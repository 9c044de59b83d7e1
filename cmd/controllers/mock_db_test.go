package controllers

import (
	"context"

	"job-portal-service/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockDB is a mock implementation of the database operations. Unset funcs
// return zero values.
type MockDB struct {
	PingFunc                      func(ctx context.Context) error
	ListUsersFunc                 func(ctx context.Context) ([]models.User, error)
	ListEmployersWithJobPostsFunc func(ctx context.Context) ([]models.User, error)
	FindUserByIDFunc              func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindUserByEmailFunc           func(ctx context.Context, email string) (*models.User, error)
	CreateUserFunc                func(ctx context.Context, user models.User) (primitive.ObjectID, error)
	DeleteUserFunc                func(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error)
	DeleteAllUsersFunc            func(ctx context.Context) (models.WriteResult, error)
	UpdateEmployerInfoFunc        func(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)
	UpdateCandidateInfoFunc       func(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)
	AddJobPostFunc                func(ctx context.Context, userID primitive.ObjectID, post models.JobPost) (models.WriteResult, error)
	FindJobPostFunc               func(ctx context.Context, userID, jobID primitive.ObjectID) (*models.JobPost, error)
	ReplaceJobPostFunc            func(ctx context.Context, userID, jobID primitive.ObjectID, fields map[string]interface{}) (*models.JobPost, error)
	DeleteJobPostFunc             func(ctx context.Context, userID, jobID primitive.ObjectID) (models.WriteResult, error)
	PruneJobPostsWithoutIDFunc    func(ctx context.Context) (models.WriteResult, error)
	AddApplicantFunc              func(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error)
	AddInviteeFunc                func(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error)
	ListJobPostRowsFunc           func(ctx context.Context) ([]models.JobPostRow, error)
	JobsByCategoryFunc            func(ctx context.Context, category string) ([]models.JobPostRow, error)
	SearchJobsFunc                func(ctx context.Context, search models.JobSearch) ([]models.JobPostRow, error)
	CountJobsByCategoryFunc       func(ctx context.Context) ([]models.CategoryCount, error)
	SearchCandidatesFunc          func(ctx context.Context, skills []string) ([]models.User, error)
	ListAppliedJobsFunc           func(ctx context.Context, candidateID string) ([]models.EmployerJob, error)
	ListInvitedJobsFunc           func(ctx context.Context, candidateID string) ([]models.EmployerJob, error)
	ListEmployeesFunc             func(ctx context.Context) ([]models.Employee, error)
	FindEmployeeFunc              func(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	CreateEmployeeFunc            func(ctx context.Context, employee models.Employee) (primitive.ObjectID, error)
	UpdateEmployeeFunc            func(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error)
	AddEmployeeJobPostFunc        func(ctx context.Context, id primitive.ObjectID, post models.EmployeeJobPost) (models.WriteResult, error)
	DeleteEmployeeFunc            func(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error)
	DeleteAllEmployeesFunc        func(ctx context.Context) (models.WriteResult, error)
	ListReferenceFunc             func(ctx context.Context, kind models.ReferenceKind) ([]models.ReferenceItem, error)
	AddReferenceFunc              func(ctx context.Context, kind models.ReferenceKind, value string) (models.ReferenceItem, error)
	ClearReferenceFunc            func(ctx context.Context, kind models.ReferenceKind) (models.WriteResult, error)
	ListJobListingsFunc           func(ctx context.Context) ([]models.JobListing, error)
	AddJobListingFunc             func(ctx context.Context, listing models.JobListing) (primitive.ObjectID, error)
}

func (db *MockDB) Ping(ctx context.Context) error {
	if db.PingFunc != nil {
		return db.PingFunc(ctx)
	}
	return nil
}

func (db *MockDB) ListUsers(ctx context.Context) ([]models.User, error) {
	if db.ListUsersFunc != nil {
		return db.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) ListEmployersWithJobPosts(ctx context.Context) ([]models.User, error) {
	if db.ListEmployersWithJobPostsFunc != nil {
		return db.ListEmployersWithJobPostsFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if db.FindUserByIDFunc != nil {
		return db.FindUserByIDFunc(ctx, id)
	}
	return nil, nil
}

func (db *MockDB) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if db.FindUserByEmailFunc != nil {
		return db.FindUserByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (db *MockDB) CreateUser(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	if db.CreateUserFunc != nil {
		return db.CreateUserFunc(ctx, user)
	}
	return primitive.NilObjectID, nil
}

func (db *MockDB) DeleteUser(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	if db.DeleteUserFunc != nil {
		return db.DeleteUserFunc(ctx, id)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) DeleteAllUsers(ctx context.Context) (models.WriteResult, error) {
	if db.DeleteAllUsersFunc != nil {
		return db.DeleteAllUsersFunc(ctx)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) UpdateEmployerInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	if db.UpdateEmployerInfoFunc != nil {
		return db.UpdateEmployerInfoFunc(ctx, id, fields)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) UpdateCandidateInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	if db.UpdateCandidateInfoFunc != nil {
		return db.UpdateCandidateInfoFunc(ctx, id, fields)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) AddJobPost(ctx context.Context, userID primitive.ObjectID, post models.JobPost) (models.WriteResult, error) {
	if db.AddJobPostFunc != nil {
		return db.AddJobPostFunc(ctx, userID, post)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) FindJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (*models.JobPost, error) {
	if db.FindJobPostFunc != nil {
		return db.FindJobPostFunc(ctx, userID, jobID)
	}
	return nil, nil
}

func (db *MockDB) ReplaceJobPost(ctx context.Context, userID, jobID primitive.ObjectID, fields map[string]interface{}) (*models.JobPost, error) {
	if db.ReplaceJobPostFunc != nil {
		return db.ReplaceJobPostFunc(ctx, userID, jobID, fields)
	}
	return nil, nil
}

func (db *MockDB) DeleteJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (models.WriteResult, error) {
	if db.DeleteJobPostFunc != nil {
		return db.DeleteJobPostFunc(ctx, userID, jobID)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) PruneJobPostsWithoutID(ctx context.Context) (models.WriteResult, error) {
	if db.PruneJobPostsWithoutIDFunc != nil {
		return db.PruneJobPostsWithoutIDFunc(ctx)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) AddApplicant(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error) {
	if db.AddApplicantFunc != nil {
		return db.AddApplicantFunc(ctx, userID, jobID, rec)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) AddInvitee(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error) {
	if db.AddInviteeFunc != nil {
		return db.AddInviteeFunc(ctx, userID, jobID, rec)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) ListJobPostRows(ctx context.Context) ([]models.JobPostRow, error) {
	if db.ListJobPostRowsFunc != nil {
		return db.ListJobPostRowsFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) JobsByCategory(ctx context.Context, category string) ([]models.JobPostRow, error) {
	if db.JobsByCategoryFunc != nil {
		return db.JobsByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (db *MockDB) SearchJobs(ctx context.Context, search models.JobSearch) ([]models.JobPostRow, error) {
	if db.SearchJobsFunc != nil {
		return db.SearchJobsFunc(ctx, search)
	}
	return nil, nil
}

func (db *MockDB) CountJobsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	if db.CountJobsByCategoryFunc != nil {
		return db.CountJobsByCategoryFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) SearchCandidates(ctx context.Context, skills []string) ([]models.User, error) {
	if db.SearchCandidatesFunc != nil {
		return db.SearchCandidatesFunc(ctx, skills)
	}
	return nil, nil
}

func (db *MockDB) ListAppliedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error) {
	if db.ListAppliedJobsFunc != nil {
		return db.ListAppliedJobsFunc(ctx, candidateID)
	}
	return nil, nil
}

func (db *MockDB) ListInvitedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error) {
	if db.ListInvitedJobsFunc != nil {
		return db.ListInvitedJobsFunc(ctx, candidateID)
	}
	return nil, nil
}

func (db *MockDB) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if db.ListEmployeesFunc != nil {
		return db.ListEmployeesFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) FindEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	if db.FindEmployeeFunc != nil {
		return db.FindEmployeeFunc(ctx, id)
	}
	return nil, nil
}

func (db *MockDB) CreateEmployee(ctx context.Context, employee models.Employee) (primitive.ObjectID, error) {
	if db.CreateEmployeeFunc != nil {
		return db.CreateEmployeeFunc(ctx, employee)
	}
	return primitive.NilObjectID, nil
}

func (db *MockDB) UpdateEmployee(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	if db.UpdateEmployeeFunc != nil {
		return db.UpdateEmployeeFunc(ctx, id, fields)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) AddEmployeeJobPost(ctx context.Context, id primitive.ObjectID, post models.EmployeeJobPost) (models.WriteResult, error) {
	if db.AddEmployeeJobPostFunc != nil {
		return db.AddEmployeeJobPostFunc(ctx, id, post)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	if db.DeleteEmployeeFunc != nil {
		return db.DeleteEmployeeFunc(ctx, id)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) DeleteAllEmployees(ctx context.Context) (models.WriteResult, error) {
	if db.DeleteAllEmployeesFunc != nil {
		return db.DeleteAllEmployeesFunc(ctx)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) ListReference(ctx context.Context, kind models.ReferenceKind) ([]models.ReferenceItem, error) {
	if db.ListReferenceFunc != nil {
		return db.ListReferenceFunc(ctx, kind)
	}
	return nil, nil
}

func (db *MockDB) AddReference(ctx context.Context, kind models.ReferenceKind, value string) (models.ReferenceItem, error) {
	if db.AddReferenceFunc != nil {
		return db.AddReferenceFunc(ctx, kind, value)
	}
	return models.ReferenceItem{}, nil
}

func (db *MockDB) ClearReference(ctx context.Context, kind models.ReferenceKind) (models.WriteResult, error) {
	if db.ClearReferenceFunc != nil {
		return db.ClearReferenceFunc(ctx, kind)
	}
	return models.WriteResult{}, nil
}

func (db *MockDB) ListJobListings(ctx context.Context) ([]models.JobListing, error) {
	if db.ListJobListingsFunc != nil {
		return db.ListJobListingsFunc(ctx)
	}
	return nil, nil
}

func (db *MockDB) AddJobListing(ctx context.Context, listing models.JobListing) (primitive.ObjectID, error) {
	if db.AddJobListingFunc != nil {
		return db.AddJobListingFunc(ctx, listing)
	}
	return primitive.NilObjectID, nil
}
