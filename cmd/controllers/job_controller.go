package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"job-portal-service/internal/apperror"
	"job-portal-service/internal/models"
)

// GetEmployersWithJobPosts lists the users that hold a job post list.
func (h *Handler) GetEmployersWithJobPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		users, err := h.DB.ListEmployersWithJobPosts(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"users": users})
	}
}

// ListJobPosts returns one row per job post, each carrying its employer's company.
func (h *Handler) ListJobPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		rows, err := h.DB.ListJobPostRows(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"jobPosts": rows})
	}
}

func (h *Handler) GetJobPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := h.findJobPost(c)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"jobPost": post})
	}
}

// findJobPost loads the post addressed by the :id path segment and the
// jobId query parameter.
func (h *Handler) findJobPost(c *gin.Context) (*models.JobPost, error) {
	ctx, cancel := h.context(c)
	defer cancel()

	userID, err := pathID(c)
	if err != nil {
		return nil, err
	}
	jobID, err := jobIDQuery(c)
	if err != nil {
		return nil, err
	}
	post, err := h.DB.FindJobPost(ctx, userID, jobID)
	if err != nil {
		return nil, notFoundAs(err, "user not found")
	}
	return post, nil
}

// ReplaceJobPost overwrites the descriptive fields of one job post. The id,
// the applicant and invitee lists and the other posts are left as they are.
func (h *Handler) ReplaceJobPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		userID, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		jobID, err := jobIDQuery(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var req models.JobPostRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}

		post, err := h.DB.ReplaceJobPost(ctx, userID, jobID, req.Fields())
		if err != nil {
			respondError(c, notFoundAs(err, "user or job post not found"))
			return
		}
		log.Info().Str("user", userID.Hex()).Str("job", jobID.Hex()).Msg("Job post replaced")
		respond(c, http.StatusOK, gin.H{"jobPost": post})
	}
}

// PruneJobPosts removes the job posts stored without an id from every user.
func (h *Handler) PruneJobPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		res, err := h.DB.PruneJobPostsWithoutID(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"result": res})
	}
}

func (h *Handler) JobsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		category := c.Query("category")
		if category == "" {
			respondError(c, apperror.BadRequest("category query parameter is missing"))
			return
		}
		rows, err := h.DB.JobsByCategory(ctx, category)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"jobPosts": rows})
	}
}

func (h *Handler) CountJobsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		counts, err := h.DB.CountJobsByCategory(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"categories": counts})
	}
}

// SearchJobs filters job posts by any combination of location, designation,
// category, position and setup. With no parameters every post is returned.
func (h *Handler) SearchJobs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var search models.JobSearch
		if err := c.ShouldBindQuery(&search); err != nil {
			respondError(c, apperror.New(http.StatusBadRequest, "invalid query", err))
			return
		}
		rows, err := h.DB.SearchJobs(ctx, search)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"jobPosts": rows})
	}
}

func (h *Handler) GetApplicants() gin.HandlerFunc {
	return h.jobPostList(func(post *models.JobPost) (string, []models.Applicant) {
		return "applicants", post.Applicants
	})
}

func (h *Handler) GetInvited() gin.HandlerFunc {
	return h.jobPostList(func(post *models.JobPost) (string, []models.Applicant) {
		return "invited", post.Invited
	})
}

func (h *Handler) jobPostList(pick func(*models.JobPost) (string, []models.Applicant)) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := h.findJobPost(c)
		if err != nil {
			respondError(c, err)
			return
		}
		key, list := pick(post)
		if list == nil {
			list = []models.Applicant{}
		}
		respond(c, http.StatusOK, gin.H{key: list})
	}
}

// AddJobPost appends a new post to an employer. The response carries the
// generated job id.
func (h *Handler) AddJobPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		userID, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var req models.JobPostRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}

		res, err := h.DB.AddJobPost(ctx, userID, req.JobPost())
		respondWrite(c, http.StatusCreated, writeUpdate, res, err, "employer not found")
	}
}

func (h *Handler) Apply() gin.HandlerFunc {
	return h.addRecord(Database.AddApplicant)
}

func (h *Handler) Invite() gin.HandlerFunc {
	return h.addRecord(Database.AddInvitee)
}

type recordWriter func(db Database, ctx context.Context, userID, jobID primitive.ObjectID, rec models.Applicant) (models.WriteResult, error)

// addRecord appends an application or invitation to the job post named by
// the jobId query parameter.
func (h *Handler) addRecord(write recordWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		userID, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		jobID, err := jobIDQuery(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var req models.ApplicantRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}

		res, err := write(h.DB, ctx, userID, jobID, req.Applicant())
		respondWrite(c, http.StatusOK, writeNested, res, err, "employer or job post not found")
	}
}

func (h *Handler) DeleteJobPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		userID, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		jobID, err := parseObjectID(c.Param("jobId"), "jobId")
		if err != nil {
			respondError(c, err)
			return
		}
		res, err := h.DB.DeleteJobPost(ctx, userID, jobID)
		respondWrite(c, http.StatusOK, writeNested, res, err, "user not found")
	}
}
