package models

import "errors"

// ErrNoFields is returned by partial updates that carry nothing to set.
var ErrNoFields = errors.New("no fields to update")

// WriteResult is the outcome of a single store write.
type WriteResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	DeletedCount  int64  `json:"deletedCount"`
	InsertedID    string `json:"insertedId,omitempty"`
	// JobId is set when the write created a job post.
	JobId string `json:"jobId,omitempty"`
}
