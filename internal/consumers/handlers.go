package consumers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/stan.go"

	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/search"
)

type Handlers struct {
	repos    *repository.Repositories
	esClient *search.ElasticsearchClient
}

func NewHandlers(repos *repository.Repositories, esClient *search.ElasticsearchClient) *Handlers {
	return &Handlers{
		repos:    repos,
		esClient: esClient,
	}
}

// HandleTourChanged переиндексирует тур по текущему состоянию базы.
// Тура нет в базе - значит, он удален, и документ снимается из индекса.
func (h *Handlers) HandleTourChanged(msg *stan.Msg) {
	var event models.TourChangedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal tour event", "error", err, "subject", msg.Subject)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tour, err := h.repos.Tours.GetByID(ctx, event.TourID)
	if err != nil {
		slog.Error("Failed to load tour for index sync", "error", err, "tour_id", event.TourID)
		return
	}

	if tour == nil {
		if err := h.esClient.DeleteTour(ctx, event.TourID); err != nil {
			slog.Error("Failed to remove tour from index", "error", err, "tour_id", event.TourID)
			return
		}
		slog.Info("Tour removed from search index", "tour_id", event.TourID)
		return
	}

	description := ""
	if tour.Description != nil {
		description = *tour.Description
	}
	doc := &search.TourDocument{
		ID:          tour.TourID,
		TypeID:      tour.TypeID,
		Title:       tour.Title,
		Description: description,
		BasePrice:   tour.BasePrice,
		IsActive:    tour.IsActive,
		CreatedAt:   tour.CreatedAt,
	}

	if err := h.esClient.IndexTour(ctx, doc); err != nil {
		slog.Error("Failed to index tour", "error", err, "tour_id", event.TourID)
		return
	}

	slog.Info("Tour synced to search index", "tour_id", event.TourID, "subject", msg.Subject)
}

// HandleBookingCreated логирует факт создания бронирования
func (h *Handlers) HandleBookingCreated(msg *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		return
	}

	slog.Info("Booking created",
		"booking_id", event.BookingID,
		"client_id", event.ClientID,
		"tour_id", event.TourID,
		"total_price", event.TotalPrice)
}

// HandlePaymentRecorded логирует платеж и смену статуса бронирования
func (h *Handlers) HandlePaymentRecorded(msg *stan.Msg) {
	var event models.PaymentRecordedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		slog.Error("Failed to unmarshal payment recorded event", "error", err)
		return
	}

	slog.Info("Payment recorded",
		"payment_id", event.PaymentID,
		"booking_id", event.BookingID,
		"amount", event.Amount,
		"total_paid", event.TotalPaid,
		"booking_status", event.BookingStatus)
}
