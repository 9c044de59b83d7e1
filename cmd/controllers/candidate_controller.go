package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-portal-service/internal/apperror"
	"job-portal-service/internal/models"
)

// ParseSkills splits a comma separated skills parameter, dropping blanks.
func ParseSkills(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// UpdateCandidateInfo sets the candidate profile fields present in the
// request. image, banner and resume may be sent as files.
func (h *Handler) UpdateCandidateInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		info, err := candidateInfoFromRequest(c)
		if err != nil {
			respondError(c, err)
			return
		}
		for _, skill := range info.Skills {
			if skill.ItemName == "" {
				respondError(c, apperror.BadRequest("every skill needs an itemName"))
				return
			}
		}
		fields, err := setFields(info)
		if err != nil {
			respondError(c, apperror.Internal(err))
			return
		}
		if err := h.saveUploads(c, fields, candidateFiles); err != nil {
			respondError(c, err)
			return
		}

		res, err := h.DB.UpdateCandidateInfo(ctx, id, fields)
		respondWrite(c, http.StatusOK, writeUpdate, res, err, "candidate not found")
	}
}

// ListAppliedJobs lists the job posts the candidate applied to, newest first.
func (h *Handler) ListAppliedJobs() gin.HandlerFunc {
	return h.candidateJobs("applied", Database.ListAppliedJobs)
}

// ListInvitedJobs lists the job posts the candidate was invited to.
func (h *Handler) ListInvitedJobs() gin.HandlerFunc {
	return h.candidateJobs("invite", Database.ListInvitedJobs)
}

func (h *Handler) candidateJobs(key string, list func(Database, context.Context, string) ([]models.EmployerJob, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		jobs, err := list(h.DB, ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{key: jobs})
	}
}

// SearchCandidates returns the candidates holding every requested skill.
func (h *Handler) SearchCandidates() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		candidates, err := h.DB.SearchCandidates(ctx, ParseSkills(c.Query("skills")))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"candidates": candidates})
	}
}
