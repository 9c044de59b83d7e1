package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"job-portal-service/cmd/responses"
	"job-portal-service/internal/apperror"
	"job-portal-service/internal/middleware"
	"job-portal-service/internal/models"
)

type writeOp int

const (
	// writeUpdate fails when no document matched the filter.
	writeUpdate writeOp = iota
	// writeNested targets one element of an embedded list. No match means
	// the owning document is missing, no modification means the element is.
	writeNested
	// writeDelete fails when nothing was deleted.
	writeDelete
)

// checkWrite maps the counts of a store write to an error. It is the only
// place where counts are turned into statuses.
func checkWrite(op writeOp, res models.WriteResult, notFound string) error {
	switch op {
	case writeUpdate:
		if res.MatchedCount == 0 {
			return apperror.NotFound(notFound)
		}
	case writeNested:
		if res.MatchedCount == 0 {
			return apperror.NotFound(notFound)
		}
		if res.ModifiedCount == 0 {
			return apperror.NotFound("job post not found")
		}
	case writeDelete:
		if res.DeletedCount == 0 {
			return apperror.NotFound(notFound)
		}
	}
	return nil
}

// notFoundAs gives a missing-document error a message naming what was looked up.
func notFoundAs(err error, message string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.New(http.StatusNotFound, message, err)
	}
	return err
}

func respond(c *gin.Context, status int, data map[string]interface{}) {
	c.JSON(status, responses.Response{Status: status, Message: "success", Data: data})
}

// respondWrite sends the outcome of a store write, or the error it maps to.
func respondWrite(c *gin.Context, status int, op writeOp, res models.WriteResult, err error, notFound string) {
	if err == nil {
		err = checkWrite(op, res, notFound)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, status, gin.H{"result": res})
}

func respondError(c *gin.Context, err error) {
	appErr := apperror.From(err)

	event := log.Warn()
	if appErr.Code >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("route", c.FullPath()).
		Int("status", appErr.Code).
		Msg(appErr.Message)

	data := gin.H{"data": appErr.Message}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		data = gin.H{"data": appErr.Message, "errors": validationMessages(verrs)}
	} else if appErr.Code < http.StatusInternalServerError && appErr.Err != nil {
		data = gin.H{"data": appErr.Error()}
	}
	c.AbortWithStatusJSON(appErr.Code, responses.Response{Status: appErr.Code, Message: appErr.Message, Data: data})
}

func validationMessages(verrs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(param))
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", field, param)
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
