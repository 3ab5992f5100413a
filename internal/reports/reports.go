package reports

import (
	"context"
	"io"
	"time"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/logger"
	"travelagency/internal/messaging"
	"travelagency/internal/models"
	"travelagency/internal/repository"
)

// Service строит CSV-отчеты и ведет импорт клиентов
type Service struct {
	clientRepo  *repository.ClientRepository
	bookingRepo *repository.BookingRepository
	natsClient  *messaging.NATSClient
}

func NewService(clientRepo *repository.ClientRepository, bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient) *Service {
	return &Service{
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
	}
}

// ExportClients выгружает всех клиентов в CSV
func (s *Service) ExportClients(ctx context.Context, w io.Writer) error {
	clients, err := s.clientRepo.List(ctx, "")
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	return WriteClientsCSV(w, clients)
}

// ImportClients загружает клиентов из CSV одной транзакцией.
// Дубликат паспорта или email в базе отклоняет весь файл.
func (s *Service) ImportClients(ctx context.Context, r io.Reader) (*models.ImportClientsResponse, error) {
	clients, err := ParseClientsCSV(r)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.ImportMany(ctx, clients); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	event := models.ClientsImportedEvent{
		Imported:  len(clients),
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventClientsImported, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish clients imported event",
			"error", err,
			"imported", len(clients),
			"event_type", models.EventClientsImported)
	}

	return &models.ImportClientsResponse{Imported: len(clients)}, nil
}

// ExportBookings выгружает отчет по бронированиям в CSV
func (s *Service) ExportBookings(ctx context.Context, w io.Writer) error {
	items, err := s.bookingRepo.ListJoined(ctx)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	return WriteBookingsCSV(w, items)
}
