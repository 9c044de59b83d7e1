package configs

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"job-portal-service/internal/models"
)

var ErrUnexpectedResult = errors.New("unexpected result from store")

// MongoDB is the store used by every handler. It is built once at startup
// from the two databases and passed to the handlers explicitly.
type MongoDB struct {
	client    *mongo.Client
	portal    *mongo.Database
	users     *mongo.Collection
	jobList   *mongo.Collection
	employees *mongo.Collection
	now       func() time.Time
}

// NewMongoDB creates a new MongoDB instance
func NewMongoDB(portal, employees *mongo.Database) *MongoDB {
	return &MongoDB{
		client:    portal.Client(),
		portal:    portal,
		users:     portal.Collection("users"),
		jobList:   portal.Collection("jobList"),
		employees: employees.Collection("employees"),
		now:       time.Now,
	}
}

func (db *MongoDB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

func updateResult(res *mongo.UpdateResult) models.WriteResult {
	return models.WriteResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

func deleteResult(res *mongo.DeleteResult) models.WriteResult {
	return models.WriteResult{DeletedCount: res.DeletedCount}
}

func insertedID(res *mongo.InsertOneResult) (primitive.ObjectID, error) {
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, ErrUnexpectedResult
	}
	return id, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) ([]T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func prefixed(prefix string, fields map[string]interface{}) bson.M {
	set := bson.M{}
	for k, v := range fields {
		set[prefix+k] = v
	}
	return set
}

// Users

func (db *MongoDB) ListUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, db.users, bson.M{})
}

func (db *MongoDB) ListEmployersWithJobPosts(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, db.users, bson.M{jobPostsPath: bson.M{"$exists": true}})
}

func (db *MongoDB) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := db.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *MongoDB) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := db.users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user in the database
func (db *MongoDB) CreateUser(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := db.users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(result)
}

func (db *MongoDB) DeleteUser(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	res, err := db.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (db *MongoDB) DeleteAllUsers(ctx context.Context) (models.WriteResult, error) {
	res, err := db.users.DeleteMany(ctx, bson.M{})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (db *MongoDB) UpdateEmployerInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	return db.setRoleInfo(ctx, id, models.RoleEmployer, employerInfoPath, fields)
}

func (db *MongoDB) UpdateCandidateInfo(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	return db.setRoleInfo(ctx, id, models.RoleCandidate, candidateInfoPath, fields)
}

func (db *MongoDB) setRoleInfo(ctx context.Context, id primitive.ObjectID, role, path string, fields map[string]interface{}) (models.WriteResult, error) {
	if len(fields) == 0 {
		return models.WriteResult{}, models.ErrNoFields
	}
	res, err := db.users.UpdateOne(ctx,
		bson.M{"_id": id, rolePath: role},
		bson.M{"$set": prefixed(path+".", fields)},
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

// Job posts

// AddJobPost appends the post to the employer's list with a fresh id.
func (db *MongoDB) AddJobPost(ctx context.Context, userID primitive.ObjectID, post models.JobPost) (models.WriteResult, error) {
	post.JobId = primitive.NewObjectID()
	post.DatePosted = db.now().UnixMilli()
	post.Applicants, post.Invited = nil, nil

	res, err := db.users.UpdateOne(ctx,
		bson.M{"_id": userID, rolePath: models.RoleEmployer},
		bson.M{"$push": bson.M{jobPostsPath: post}},
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	out := updateResult(res)
	out.JobId = post.JobId.Hex()
	return out, nil
}

func (db *MongoDB) FindJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (*models.JobPost, error) {
	user, err := db.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	post, ok := user.FindJobPost(jobID)
	if !ok {
		return nil, models.ErrJobPostNotFound
	}
	return post, nil
}

// ReplaceJobPost overwrites the descriptive fields of one post in a single
// update targeted with an array filter, leaving its id, applicants, invitees
// and sibling posts untouched. It returns the post as stored after the update.
func (db *MongoDB) ReplaceJobPost(ctx context.Context, userID, jobID primitive.ObjectID, fields map[string]interface{}) (*models.JobPost, error) {
	if len(fields) == 0 {
		return nil, models.ErrNoFields
	}
	opts := options.FindOneAndUpdate().
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{bson.M{"post._jobId": jobID}}}).
		SetReturnDocument(options.After)

	var user models.User
	err := db.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID, jobPostsPath + "._jobId": jobID},
		bson.M{"$set": prefixed(jobPostsPath+".$[post].", fields)},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, err
	}
	post, ok := user.FindJobPost(jobID)
	if !ok {
		return nil, models.ErrJobPostNotFound
	}
	return post, nil
}

func (db *MongoDB) DeleteJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (models.WriteResult, error) {
	res, err := db.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{jobPostsPath: bson.M{"_jobId": jobID}}},
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

// PruneJobPostsWithoutID removes, from every user, the job posts that were
// stored without an _jobId.
func (db *MongoDB) PruneJobPostsWithoutID(ctx context.Context) (models.WriteResult, error) {
	res, err := db.users.UpdateMany(ctx,
		bson.M{jobPostsPath: bson.M{"$elemMatch": bson.M{"_jobId": nil}}},
		bson.M{"$pull": bson.M{jobPostsPath: bson.M{"_jobId": nil}}},
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (db *MongoDB) AddApplicant(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error) {
	rec.DateApplied = db.now().UnixMilli()
	return db.pushRecord(ctx, userID, jobID, ApplicantsList, rec)
}

func (db *MongoDB) AddInvitee(ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error) {
	rec.DateInvited = db.now().UnixMilli()
	return db.pushRecord(ctx, userID, jobID, InvitedList, rec)
}

// pushRecord appends rec to one list of the post matching jobID. Only that
// post is touched. The filter requires the post to exist, so a missing user,
// job post list or post matches nothing.
func (db *MongoDB) pushRecord(ctx context.Context, userID, jobID primitive.ObjectID, list string, rec models.Applicant) (models.WriteResult, error) {
	opts := options.Update().
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{bson.M{"jobPost._jobId": jobID}}})
	res, err := db.users.UpdateOne(ctx,
		bson.M{"_id": userID, jobPostsPath + "._jobId": jobID},
		bson.M{"$push": bson.M{jobPostsPath + ".$[jobPost]." + list: rec}},
		opts,
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

// Listings and searches

func (db *MongoDB) ListJobPostRows(ctx context.Context) ([]models.JobPostRow, error) {
	return aggregate[models.JobPostRow](ctx, db.users, JobPostsWithCompanyPipeline())
}

func (db *MongoDB) JobsByCategory(ctx context.Context, category string) ([]models.JobPostRow, error) {
	return aggregate[models.JobPostRow](ctx, db.users, JobSearchPipeline(models.JobSearch{Category: category}))
}

func (db *MongoDB) SearchJobs(ctx context.Context, search models.JobSearch) ([]models.JobPostRow, error) {
	return aggregate[models.JobPostRow](ctx, db.users, JobSearchPipeline(search))
}

func (db *MongoDB) CountJobsByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	return aggregate[models.CategoryCount](ctx, db.users, CategoryCountPipeline())
}

func (db *MongoDB) SearchCandidates(ctx context.Context, skills []string) ([]models.User, error) {
	return aggregate[models.User](ctx, db.users, CandidateSearchPipeline(skills))
}

func (db *MongoDB) ListAppliedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error) {
	return aggregate[models.EmployerJob](ctx, db.users, EmployerJobsPipeline(ApplicantsList, candidateID))
}

func (db *MongoDB) ListInvitedJobs(ctx context.Context, candidateID string) ([]models.EmployerJob, error) {
	return aggregate[models.EmployerJob](ctx, db.users, EmployerJobsPipeline(InvitedList, candidateID))
}

// Employees

func (db *MongoDB) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return findAll[models.Employee](ctx, db.employees, bson.M{})
}

func (db *MongoDB) FindEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	if err := db.employees.FindOne(ctx, bson.M{"_id": id}).Decode(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (db *MongoDB) CreateEmployee(ctx context.Context, employee models.Employee) (primitive.ObjectID, error) {
	employee.Id = primitive.NilObjectID
	if employee.Level.Details.JobPosts == nil {
		employee.Level.Details.JobPosts = []models.EmployeeJobPost{}
	}
	for i := range employee.Level.Details.JobPosts {
		if employee.Level.Details.JobPosts[i].JobId.IsZero() {
			employee.Level.Details.JobPosts[i].JobId = primitive.NewObjectID()
		}
	}
	result, err := db.employees.InsertOne(ctx, employee)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(result)
}

func (db *MongoDB) UpdateEmployee(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (models.WriteResult, error) {
	if len(fields) == 0 {
		return models.WriteResult{}, models.ErrNoFields
	}
	res, err := db.employees.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": prefixed("", fields)})
	if err != nil {
		return models.WriteResult{}, err
	}
	return updateResult(res), nil
}

func (db *MongoDB) AddEmployeeJobPost(ctx context.Context, id primitive.ObjectID, post models.EmployeeJobPost) (models.WriteResult, error) {
	post.JobId = primitive.NewObjectID()
	res, err := db.employees.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"level.details.job_posts": post}},
	)
	if err != nil {
		return models.WriteResult{}, err
	}
	out := updateResult(res)
	out.JobId = post.JobId.Hex()
	return out, nil
}

func (db *MongoDB) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	res, err := db.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (db *MongoDB) DeleteAllEmployees(ctx context.Context) (models.WriteResult, error) {
	res, err := db.employees.DeleteMany(ctx, bson.M{})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

// Reference lists

func (db *MongoDB) ListReference(ctx context.Context, kind models.ReferenceKind) ([]models.ReferenceItem, error) {
	docs, err := findAll[bson.M](ctx, db.portal.Collection(kind.Collection), bson.M{})
	if err != nil {
		return nil, err
	}
	items := make([]models.ReferenceItem, 0, len(docs))
	for _, doc := range docs {
		item := models.ReferenceItem{Kind: kind}
		item.Id, _ = doc["_id"].(primitive.ObjectID)
		item.Value, _ = doc[kind.Field].(string)
		items = append(items, item)
	}
	return items, nil
}

func (db *MongoDB) AddReference(ctx context.Context, kind models.ReferenceKind, value string) (models.ReferenceItem, error) {
	result, err := db.portal.Collection(kind.Collection).InsertOne(ctx, bson.D{{Key: kind.Field, Value: value}})
	if err != nil {
		return models.ReferenceItem{}, err
	}
	id, err := insertedID(result)
	if err != nil {
		return models.ReferenceItem{}, err
	}
	return models.ReferenceItem{Id: id, Kind: kind, Value: value}, nil
}

func (db *MongoDB) ClearReference(ctx context.Context, kind models.ReferenceKind) (models.WriteResult, error) {
	res, err := db.portal.Collection(kind.Collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return models.WriteResult{}, err
	}
	return deleteResult(res), nil
}

func (db *MongoDB) ListJobListings(ctx context.Context) ([]models.JobListing, error) {
	return findAll[models.JobListing](ctx, db.jobList, bson.M{})
}

func (db *MongoDB) AddJobListing(ctx context.Context, listing models.JobListing) (primitive.ObjectID, error) {
	listing.Id = primitive.NilObjectID
	if listing.DatePosted == 0 {
		listing.DatePosted = db.now().UnixMilli()
	}
	result, err := db.jobList.InsertOne(ctx, listing)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return insertedID(result)
}
