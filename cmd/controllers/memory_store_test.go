package controllers

import (
	"context"
	"sync"

	"job-portal-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryStore keeps employers in memory and implements the job post
// operations with the same outcomes as the Mongo store. Everything else
// falls back to MockDB.
type memoryStore struct {
	MockDB
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemoryStore(employers ...primitive.ObjectID) *memoryStore {
	s := &memoryStore{users: map[primitive.ObjectID]*models.User{}}
	for _, id := range employers {
		s.users[id] = &models.User{Id: id, Role: models.Role{Role: models.RoleEmployer}}
	}
	return s
}

func (s *memoryStore) AddJobPost(ctx context.Context, userID primitive.ObjectID, post models.JobPost) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok || user.Role.Role != models.RoleEmployer {
		return models.WriteResult{}, nil
	}
	post.JobId = primitive.NewObjectID()
	user.Role.Data.JobPosts = append(user.Role.Data.JobPosts, post)
	return models.WriteResult{MatchedCount: 1, ModifiedCount: 1, JobId: post.JobId.Hex()}, nil
}

func (s *memoryStore) FindJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (*models.JobPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	post, ok := user.FindJobPost(jobID)
	if !ok {
		return nil, models.ErrJobPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *memoryStore) DeleteJobPost(ctx context.Context, userID, jobID primitive.ObjectID) (models.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return models.WriteResult{}, nil
	}
	kept := user.Role.Data.JobPosts[:0]
	for _, p := range user.Role.Data.JobPosts {
		if p.JobId != jobID {
			kept = append(kept, p)
		}
	}
	res := models.WriteResult{MatchedCount: 1}
	if len(kept) != len(user.Role.Data.JobPosts) {
		res.ModifiedCount = 1
	}
	user.Role.Data.JobPosts = kept
	return res, nil
}

// ReplaceJobPost sets the fields on the one post under the store lock, the
// way a single positional update does.
func (s *memoryStore) ReplaceJobPost(ctx context.Context, userID, jobID primitive.ObjectID, fields map[string]interface{}) (*models.JobPost, error) {
	if len(fields) == 0 {
		return nil, models.ErrNoFields
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	post, ok := user.FindJobPost(jobID)
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	raw, err := bson.Marshal(post)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	if raw, err = bson.Marshal(doc); err != nil {
		return nil, err
	}
	var updated models.JobPost
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return nil, err
	}
	*post = updated
	copied := updated
	return &copied, nil
}

// writeBackJobPosts replaces the whole job post list, as a client that read
// the list, changed it and saved it would.
func (s *memoryStore) writeBackJobPosts(userID primitive.ObjectID, posts []models.JobPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID].Role.Data.JobPosts = append([]models.JobPost(nil), posts...)
}

func (s *memoryStore) posts(userID primitive.ObjectID) []models.JobPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.JobPost(nil), s.users[userID].Role.Data.JobPosts...)
}
