package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportClients - GET /api/reports/clients
// Выгрузка всех клиентов в CSV
func (h *Handlers) ExportClients(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=clients.csv")

	if err := h.reports.ExportClients(c.Request.Context(), c.Writer); err != nil {
		// Заголовки могли уже уйти; в таком случае остается только лог
		if !c.Writer.Written() {
			respondError(c, err)
		}
		return
	}
}

// ImportClients - POST /api/reports/clients
// Импорт клиентов из CSV: либо весь файл, либо ничего
func (h *Handlers) ImportClients(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	response, err := h.reports.ImportClients(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ExportBookings - GET /api/reports/bookings
// Отчет по бронированиям с именами клиентов и названиями туров
func (h *Handlers) ExportBookings(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=bookings.csv")

	if err := h.reports.ExportBookings(c.Request.Context(), c.Writer); err != nil {
		if !c.Writer.Written() {
			respondError(c, err)
		}
		return
	}
}
