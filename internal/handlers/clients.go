package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelagency/internal/models"
)

// CreateClient - POST /api/clients
// Создать клиента
func (h *Handlers) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.services.Clients.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateIDResponse{ID: client.ClientID})
}

// GetClient - GET /api/clients/:id
func (h *Handlers) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	client, err := h.services.Clients.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ListClients - GET /api/clients?filter=
func (h *Handlers) ListClients(c *gin.Context) {
	clients, err := h.services.Clients.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateClient - PUT /api/clients/:id
func (h *Handlers) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.services.Clients.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient - DELETE /api/clients/:id
func (h *Handlers) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Clients.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
