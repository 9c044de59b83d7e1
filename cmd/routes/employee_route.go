package routes

import (
	"job-portal-service/cmd/controllers"

	"github.com/gin-gonic/gin"
)

func EmployeeRoute(router *gin.Engine, h *controllers.Handler) {
	employees := router.Group("/employees")

	employees.GET("/", h.GetEmployees())
	employees.DELETE("/", h.DeleteEmployees())
	employees.POST("/", h.CreateEmployee())
	employees.GET("/:id", h.GetEmployee())
	employees.PUT("/:id", h.UpdateEmployee())
	employees.DELETE("/:id", h.DeleteEmployee())
	employees.POST("/:id/add", h.AddEmployeeJobPost())
}
