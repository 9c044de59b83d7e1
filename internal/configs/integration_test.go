package configs

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"job-portal-service/internal/models"
)

// newIntegrationStore connects to MONGO_TEST_URI and returns a store over a
// throwaway database that is dropped when the test ends.
func newIntegrationStore(t *testing.T) (*MongoDB, *mongo.Client, string) {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	client, err := ConnectDB(ctx, uri)
	require.NoError(t, err)
	name := "job_portal_test_" + primitive.NewObjectID().Hex()
	db := client.Database(name)
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	EnsureSchemas(ctx, db, append(PortalSchemas(), EmployeeSchemas()...))
	EnsureIndexes(ctx, db)
	return NewMongoDB(db, db), client, name
}

func createEmployer(t *testing.T, store *MongoDB, email string) primitive.ObjectID {
	t.Helper()
	id, err := store.CreateUser(context.Background(), models.User{
		Email:    email,
		Password: "hash",
		Role: models.Role{
			Role: models.RoleEmployer,
			Data: models.RoleData{EmployerInfo: &models.EmployerInfo{Company: "Acme", Location: "Manila"}},
		},
	})
	require.NoError(t, err)
	return id
}

func addPost(t *testing.T, store *MongoDB, userID primitive.ObjectID, designation, category string) primitive.ObjectID {
	t.Helper()
	res, err := store.AddJobPost(context.Background(), userID, models.JobPost{
		Designation: designation, Description: "d", Category: category, Setup: "remote",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, res.MatchedCount)
	id, err := primitive.ObjectIDFromHex(res.JobId)
	require.NoError(t, err)
	return id
}

func TestIntegrationUniqueEmail(t *testing.T) {
	store, _, _ := newIntegrationStore(t)
	createEmployer(t, store, "hr@acme.test")

	_, err := store.CreateUser(context.Background(), models.User{
		Email: "hr@acme.test", Password: "hash", Role: models.Role{Role: models.RoleCandidate},
	})
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

// Two writers that each read the whole list, change a different post and
// write the list back lose one of the edits. The array filter update keeps both.
func TestIntegrationWholeArrayWriteBackLosesUpdates(t *testing.T) {
	store, client, dbName := newIntegrationStore(t)
	ctx := context.Background()
	userID := createEmployer(t, store, "hr@acme.test")
	jobA := addPost(t, store, userID, "A", "IT")
	jobB := addPost(t, store, userID, "B", "IT")
	users := GetCollection(client, dbName, "users")

	first, err := store.FindUserByID(ctx, userID)
	require.NoError(t, err)
	second, err := store.FindUserByID(ctx, userID)
	require.NoError(t, err)

	postA, _ := first.FindJobPost(jobA)
	postA.Designation = "A edited"
	postB, _ := second.FindJobPost(jobB)
	postB.Designation = "B edited"

	for _, snapshot := range []*models.User{first, second} {
		_, err := users.UpdateOne(ctx, bson.M{"_id": userID},
			bson.M{"$set": bson.M{"role.data.job_posts": snapshot.Role.Data.JobPosts}})
		require.NoError(t, err)
	}

	got, err := store.FindJobPost(ctx, userID, jobA)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Designation, "the first writer's edit is overwritten")

	var wg sync.WaitGroup
	for id, designation := range map[primitive.ObjectID]string{jobA: "A replaced", jobB: "B replaced"} {
		wg.Add(1)
		go func(id primitive.ObjectID, designation string) {
			defer wg.Done()
			_, err := store.ReplaceJobPost(ctx, userID, id, map[string]interface{}{"designation": designation, "description": "d"})
			assert.NoError(t, err)
		}(id, designation)
	}
	wg.Wait()

	user, err := store.FindUserByID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, user.Role.Data.JobPosts, 2)
	assert.Equal(t, "A replaced", user.Role.Data.JobPosts[0].Designation)
	assert.Equal(t, "B replaced", user.Role.Data.JobPosts[1].Designation)
}

func TestIntegrationJobPostLifecycle(t *testing.T) {
	store, _, _ := newIntegrationStore(t)
	ctx := context.Background()
	userID := createEmployer(t, store, "hr@acme.test")
	first := addPost(t, store, userID, "Backend Engineer", "IT")
	middle := addPost(t, store, userID, "Designer", "Art")
	last := addPost(t, store, userID, "Data Engineer", "IT")

	res, err := store.AddApplicant(ctx, userID, middle, models.Applicant{Id: "cand-1", Email: "c@x.test"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)
	res, err = store.AddApplicant(ctx, userID, primitive.NewObjectID(), models.Applicant{Id: "cand-1", Email: "c@x.test"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)

	// an employer without any job post list is a miss, not a server error
	empty := createEmployer(t, store, "empty@acme.test")
	res, err = store.AddInvitee(ctx, empty, middle, models.Applicant{Id: "cand-1", Email: "c@x.test"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)

	applied, err := store.ListAppliedJobs(ctx, "cand-1")
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, middle, applied[0].JobId)
	assert.Equal(t, userID, applied[0].EmployerId)
	assert.Equal(t, "Acme", applied[0].EmployerInfo.Company)
	require.NotNil(t, applied[0].Record)
	assert.Equal(t, "cand-1", applied[0].Record.Id)

	rows, err := store.SearchJobs(ctx, models.JobSearch{Designation: "ENG"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	rows, err = store.SearchJobs(ctx, models.JobSearch{})
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	counts, err := store.CountJobsByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryCount{{Category: "IT", Count: 2}, {Category: "Art", Count: 1}}, counts)

	withCompany, err := store.ListJobPostRows(ctx)
	require.NoError(t, err)
	require.Len(t, withCompany, 3)
	assert.Equal(t, "Acme", withCompany[0].Role.Data.JobPost.Company)

	res, err = store.DeleteJobPost(ctx, userID, middle)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)

	user, err := store.FindUserByID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, user.Role.Data.JobPosts, 2)
	assert.Equal(t, first, user.Role.Data.JobPosts[0].JobId)
	assert.Equal(t, last, user.Role.Data.JobPosts[1].JobId)
}

func TestIntegrationCandidateSearchRequiresAllSkills(t *testing.T) {
	store, _, _ := newIntegrationStore(t)
	ctx := context.Background()

	for email, skills := range map[string][]string{"both@x.test": {"a", "b"}, "one@x.test": {"a"}} {
		info := &models.CandidateInfo{Name: email}
		for _, s := range skills {
			info.Skills = append(info.Skills, models.Skill{ItemName: s})
		}
		_, err := store.CreateUser(ctx, models.User{
			Email: email, Password: "hash",
			Role: models.Role{Role: models.RoleCandidate, Data: models.RoleData{CandidateInfo: info}},
		})
		require.NoError(t, err)
	}

	found, err := store.SearchCandidates(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "both@x.test", found[0].Email)

	found, err = store.SearchCandidates(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
