package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateBooking - POST /api/bookings
// Создать бронирование; полная стоимость рассчитывается на сервере
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetBooking - GET /api/bookings/:id
// Бронирование вместе с платежами
func (h *Handlers) GetBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.services.Bookings.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListBookings - GET /api/bookings
func (h *Handlers) ListBookings(c *gin.Context) {
	items, err := h.services.Bookings.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateBooking - PUT /api/bookings/:id
func (h *Handlers) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CancelBooking - POST /api/bookings/:id/cancel
func (h *Handlers) CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	// Тело необязательно
	_ = c.ShouldBindJSON(&req)

	if err := h.services.Bookings.Cancel(c.Request.Context(), id, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBooking - DELETE /api/bookings/:id
func (h *Handlers) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Bookings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordPayment - POST /api/bookings/:id/payments
// Зарегистрировать платеж; при полной оплате бронирование переходит в "paid"
func (h *Handlers) RecordPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.BookingID = id

	response, err := h.services.Bookings.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
