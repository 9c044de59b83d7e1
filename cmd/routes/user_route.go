package routes

import (
	"time"

	"job-portal-service/cmd/controllers"
	"job-portal-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoute(router *gin.Engine, h *controllers.Handler, limiter middleware.Limiter) {
	api := router.Group("/api")

	api.GET("/", h.GetUsers())
	api.DELETE("/", h.DeleteUsers())
	api.POST("/", middleware.RateLimit(limiter, "signup", time.Minute), h.Signup())
	api.POST("/login", middleware.RateLimit(limiter, "login", time.Minute), h.Login())

	api.GET("/jobPosts", h.GetEmployersWithJobPosts())
	api.DELETE("/jobPosts", h.PruneJobPosts())
	api.GET("/jobPosts/:id", h.GetJobPost())
	api.PUT("/jobPosts/:id", h.ReplaceJobPost())
	api.GET("/jobPosts2", h.ListJobPosts())
	api.GET("/jobPosts2/find/category", h.CountJobsByCategory())
	api.GET("/jobs-by-category", h.JobsByCategory())
	api.GET("/search-jobs", h.SearchJobs())
	api.GET("/applicants/:id", h.GetApplicants())
	api.GET("/invited/:id", h.GetInvited())
	api.POST("/apply2/:id", h.Apply())
	api.POST("/invite/:id", h.Invite())

	api.GET("/:id", h.GetUser())
	api.PUT("/:id", h.UpdateEmployerInfo())
	api.DELETE("/:id", h.DeleteUser())
	api.POST("/:id/add", h.AddJobPost())
	api.DELETE("/:id/job/:jobId", h.DeleteJobPost())
}
