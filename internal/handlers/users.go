package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateUser - POST /api/users
// Доступно только администраторам
func (h *Handlers) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.services.Users.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: user.UserID})
}
