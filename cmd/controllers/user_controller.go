package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"job-portal-service/internal/apperror"
	"job-portal-service/internal/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers an employer or a candidate. An email that is already
// taken is rejected before anything is written.
func (h *Handler) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var req models.SignupRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		role, err := req.Role.ToRole()
		if err != nil {
			respondError(c, apperror.New(http.StatusBadRequest, err.Error(), err))
			return
		}
		email := normalizeEmail(req.Email)

		_, err = h.DB.FindUserByEmail(ctx, email)
		if err == nil {
			respondError(c, apperror.Conflict("This email already exists"))
			return
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			respondError(c, err)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			// max counts characters, bcrypt counts bytes
			respondError(c, apperror.New(http.StatusBadRequest, "password must be at most 72 bytes", err))
			return
		}
		if err != nil {
			respondError(c, apperror.Internal(err))
			return
		}

		user := models.User{Email: email, Password: string(hash), Role: role}
		userId, err := h.DB.CreateUser(ctx, user)
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, apperror.Conflict("This email already exists"))
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}

		user.Id = userId
		log.Info().Str("user", userId.Hex()).Str("role", role.Role).Msg("User created successfully")
		respond(c, http.StatusCreated, gin.H{"user": user})
	}
}

// Login checks the password of an existing account. Unknown emails and
// wrong passwords are reported with different statuses.
func (h *Handler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var req models.LoginRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}

		user, err := h.DB.FindUserByEmail(ctx, normalizeEmail(req.Email))
		if err != nil {
			respondError(c, notFoundAs(err, "user not found"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			respondError(c, apperror.New(http.StatusUnauthorized, "wrong password", err))
			return
		}

		log.Info().Str("user", user.Id.Hex()).Msg("User logged in")
		respond(c, http.StatusOK, gin.H{"user": user})
	}
}

func (h *Handler) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		users, err := h.DB.ListUsers(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"users": users})
	}
}

func (h *Handler) DeleteUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		res, err := h.DB.DeleteAllUsers(ctx)
		respondWrite(c, http.StatusOK, writeDelete, res, err, "no users to delete")
	}
}

func (h *Handler) GetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		user, err := h.DB.FindUserByID(ctx, id)
		if err != nil {
			respondError(c, notFoundAs(err, "user not found"))
			return
		}
		respond(c, http.StatusOK, gin.H{"user": user})
	}
}

func (h *Handler) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		res, err := h.DB.DeleteUser(ctx, id)
		respondWrite(c, http.StatusOK, writeDelete, res, err, "user not found")
	}
}

// UpdateEmployerInfo sets the employer profile fields that are present in
// the request. logo and banner may be sent as files.
func (h *Handler) UpdateEmployerInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		info, err := employerInfoFromRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}
		fields, err := setFields(info)
		if err != nil {
			respondError(c, apperror.Internal(err))
			return
		}
		if err := h.saveUploads(c, fields, employerFiles); err != nil {
			respondError(c, err)
			return
		}

		res, err := h.DB.UpdateEmployerInfo(ctx, id, fields)
		respondWrite(c, http.StatusOK, writeUpdate, res, err, "employer not found")
	}
}
