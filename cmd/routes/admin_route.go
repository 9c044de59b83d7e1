package routes

import (
	"job-portal-service/cmd/controllers"
	"job-portal-service/internal/models"

	"github.com/gin-gonic/gin"
)

// referencePaths maps each lookup list to its path under /admin. Categories
// are listed at the group root.
var referencePaths = []struct {
	list string
	add  string
	kind models.ReferenceKind
}{
	{"/", "/category", models.CategoryKind},
	{"/position", "/position", models.PositionKind},
	{"/setup", "/setup", models.SetupKind},
	{"/rate", "/rate", models.RateKind},
	{"/role", "/role", models.RoleKind},
	{"/degree", "/degree", models.DegreeKind},
	{"/course", "/course", models.CourseKind},
	{"/university", "/university", models.UniversityKind},
	{"/skills", "/skills", models.SkillKind},
}

func AdminRoute(router *gin.Engine, h *controllers.Handler) {
	admin := router.Group("/admin")

	for _, p := range referencePaths {
		admin.GET(p.list, h.ListReference(p.kind))
		admin.POST(p.add, h.AddReference(p.kind))
	}
	admin.DELETE("/skills", h.ClearReference(models.SkillKind))

	admin.GET("/jobList", h.ListJobListings())
	admin.POST("/jobList", h.AddJobListing())
}

// MiscRoute serves the health check and the uploaded files.
func MiscRoute(router *gin.Engine, h *controllers.Handler, uploadsDir string) {
	router.GET("/healthz", h.Health())
	router.Static("/uploads", uploadsDir)
}
