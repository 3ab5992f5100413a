package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateEmployee - POST /api/employees
func (h *Handlers) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.services.Employees.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: employee.EmployeeID})
}

// GetEmployee - GET /api/employees/:id
func (h *Handlers) GetEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	employee, err := h.services.Employees.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees - GET /api/employees
func (h *Handlers) ListEmployees(c *gin.Context) {
	employees, err := h.services.Employees.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee - PUT /api/employees/:id
func (h *Handlers) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.services.Employees.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee - DELETE /api/employees/:id
func (h *Handlers) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Employees.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
