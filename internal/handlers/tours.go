package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateTour - POST /api/tours
func (h *Handlers) CreateTour(c *gin.Context) {
	var req models.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := h.services.Tours.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: tour.TourID})
}

// GetTour - GET /api/tours/:id
func (h *Handlers) GetTour(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tour, err := h.services.Tours.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tour)
}

// ListTours - GET /api/tours?only_active=
func (h *Handlers) ListTours(c *gin.Context) {
	onlyActive := c.DefaultQuery("only_active", "false") == "true"

	tours, err := h.services.Tours.List(c.Request.Context(), onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tours)
}

// SearchTours - GET /api/tours/search?query=&price_min=&price_max=&only_active=&page=&page_size=
// Полнотекстовый поиск по названию и описанию
func (h *Handlers) SearchTours(c *gin.Context) {
	var req models.SearchToursRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be >= 1"})
		return
	}
	if pageSize < 1 || pageSize > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be between 1 and 100"})
		return
	}

	docs, err := h.services.Tours.Search(c.Request.Context(), &req, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// UpdateTour - PUT /api/tours/:id
func (h *Handlers) UpdateTour(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := h.services.Tours.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tour)
}

// DeleteTour - DELETE /api/tours/:id
func (h *Handlers) DeleteTour(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Tours.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
