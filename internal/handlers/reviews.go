package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateReview - POST /api/reviews
// Клиент оставляет не больше одного отзыва о туре
func (h *Handlers) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.services.Reviews.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: review.ReviewID})
}

// ListReviews - GET /api/reviews?tour_id=
func (h *Handlers) ListReviews(c *gin.Context) {
	tourID, _ := strconv.ParseInt(c.DefaultQuery("tour_id", "0"), 10, 64)

	reviews, err := h.services.Reviews.ListByTour(c.Request.Context(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// DeleteReview - DELETE /api/reviews/:id
func (h *Handlers) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Reviews.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
