package apperror

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"job-portal-service/internal/models"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Validation(err error) *AppError {
	return New(http.StatusBadRequest, "validation error", err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "internal server error", err)
}

// From classifies err. Store errors are mapped to their HTTP meaning; anything
// unrecognised is internal.
func From(err error) *AppError {
	var appErr *AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, models.ErrNoFields):
		return New(http.StatusBadRequest, "no fields to update", err)
	case errors.Is(err, models.ErrJobPostNotFound):
		return New(http.StatusNotFound, "job post not found", err)
	case errors.Is(err, mongo.ErrNoDocuments):
		return New(http.StatusNotFound, "not found", err)
	case errors.Is(err, primitive.ErrInvalidHex):
		return New(http.StatusBadRequest, "malformed id", err)
	case mongo.IsDuplicateKeyError(err):
		return New(http.StatusConflict, "duplicate key", err)
	default:
		return Internal(err)
	}
}
