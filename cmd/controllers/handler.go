package controllers

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal-service/internal/apperror"
)

const defaultTimeout = 10 * time.Second

// Handler carries the dependencies shared by every route. It is built once
// in main and its methods return the gin handlers registered by routes.
type Handler struct {
	DB       Database
	Uploads  *Uploader
	Timeout  time.Duration
	validate *validator.Validate
}

func NewHandler(db Database, uploads *Uploader, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	v := validator.New()
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &Handler{DB: db, Uploads: uploads, Timeout: timeout, validate: v}
}

func (h *Handler) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// bindJSON decodes the body into dst and validates it.
func (h *Handler) bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.New(http.StatusBadRequest, "invalid request body", err)
	}
	return h.validateStruct(dst)
}

func (h *Handler) validateStruct(v interface{}) error {
	if err := h.validate.Struct(v); err != nil {
		return apperror.Validation(err)
	}
	return nil
}

func parseObjectID(raw, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperror.New(http.StatusBadRequest, "malformed "+name, err)
	}
	return id, nil
}

func pathID(c *gin.Context) (primitive.ObjectID, error) {
	return parseObjectID(c.Param("id"), "id")
}

// jobIDQuery reads the jobId query parameter, which is required.
func jobIDQuery(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.Query("jobId")
	if raw == "" {
		return primitive.NilObjectID, apperror.BadRequest("jobId query parameter is missing")
	}
	return parseObjectID(raw, "jobId")
}

// Health reports whether the store answers a ping.
func (h *Handler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		if err := h.DB.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("Store ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
