package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"job-portal-service/internal/models"
)

func (h *Handler) GetEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		employees, err := h.DB.ListEmployees(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"employees": employees})
	}
}

func (h *Handler) DeleteEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		res, err := h.DB.DeleteAllEmployees(ctx)
		respondWrite(c, http.StatusOK, writeDelete, res, err, "no employees to delete")
	}
}

func (h *Handler) GetEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		employee, err := h.DB.FindEmployee(ctx, id)
		if err != nil {
			respondError(c, notFoundAs(err, "employee not found"))
			return
		}
		respond(c, http.StatusOK, gin.H{"employee": employee})
	}
}

func (h *Handler) CreateEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		var employee models.Employee
		if err := h.bindJSON(c, &employee); err != nil {
			respondError(c, err)
			return
		}
		id, err := h.DB.CreateEmployee(ctx, employee)
		if err != nil {
			respondError(c, err)
			return
		}
		employee.Id = id
		log.Info().Str("employee", id.Hex()).Msg("Employee created successfully")
		respond(c, http.StatusCreated, gin.H{"employee": employee})
	}
}

// UpdateEmployee sets only the fields present in the body.
func (h *Handler) UpdateEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var update models.EmployeeUpdate
		if err := h.bindJSON(c, &update); err != nil {
			respondError(c, err)
			return
		}
		fields := update.Fields()
		if len(fields) == 0 {
			respondError(c, models.ErrNoFields)
			return
		}
		res, err := h.DB.UpdateEmployee(ctx, id, fields)
		respondWrite(c, http.StatusOK, writeUpdate, res, err, "employee not found")
	}
}

func (h *Handler) DeleteEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		res, err := h.DB.DeleteEmployee(ctx, id)
		respondWrite(c, http.StatusOK, writeDelete, res, err, "employee not found")
	}
}

// AddEmployeeJobPost appends a job post to the employee's level details.
func (h *Handler) AddEmployeeJobPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := h.context(c)
		defer cancel()

		id, err := pathID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var req models.EmployeeJobPostRequest
		if err := h.bindJSON(c, &req); err != nil {
			respondError(c, err)
			return
		}
		post := models.EmployeeJobPost{Designation: req.Designation, Description: req.Description}
		res, err := h.DB.AddEmployeeJobPost(ctx, id, post)
		respondWrite(c, http.StatusCreated, writeUpdate, res, err, "employee not found")
	}
}
