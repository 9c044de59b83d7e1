package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-service/internal/apperror"
	"job-portal-service/internal/models"
)

// ListReference returns every entry of one lookup list.
func (h *Handler) ListReference(kind models.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		items, err := h.DB.ListReference(ctx, kind)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{kind.Collection: items})
	}
}

// AddReference appends one entry to a lookup list. Duplicates are allowed.
func (h *Handler) AddReference(kind models.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var req models.ReferenceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, apperror.New(http.StatusBadRequest, "invalid request body", err))
			return
		}
		value, ok := req.Value(kind)
		if !ok {
			respondError(c, apperror.BadRequest(kind.Field+" is required"))
			return
		}

		item, err := h.DB.AddReference(ctx, kind, value)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{kind.Collection: item})
	}
}

func (h *Handler) ClearReference(kind models.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		res, err := h.DB.ClearReference(ctx, kind)
		respondWrite(c, http.StatusOK, writeDelete, res, err, "no "+kind.Collection+" entries to delete")
	}
}

func (h *Handler) ListJobListings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		listings, err := h.DB.ListJobListings(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"jobList": listings})
	}
}

func (h *Handler) AddJobListing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var listing models.JobListing
		if err := h.bindJSON(c, &listing); err != nil {
			respondError(c, err)
			return
		}
		id, err := h.DB.AddJobListing(ctx, listing)
		if err != nil {
			respondError(c, err)
			return
		}
		listing.Id = id
		respond(c, http.StatusCreated, gin.H{"jobList": listing})
	}
}
