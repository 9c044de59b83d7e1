package routes

import (
	"job-portal-service/cmd/controllers"

	"github.com/gin-gonic/gin"
)

func CandidateRoute(router *gin.Engine, h *controllers.Handler) {
	candidate := router.Group("/candidate")

	candidate.PUT("/:id", h.UpdateCandidateInfo())
	candidate.GET("/applied/:id", h.ListAppliedJobs())
	candidate.GET("/invite/:id", h.ListInvitedJobs())
	candidate.GET("/search-candidates", h.SearchCandidates())
}
