package consumers

import (
	"context"
	"log/slog"

	"travelagency/internal/config"
	"travelagency/internal/consumers/jobs"
	"travelagency/internal/database"
	"travelagency/internal/messaging"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/search"
)

// ConsumerService держит подписки NATS и фоновые задачи: синхронизацию
// поискового индекса туров и перевод завершившихся бронирований в completed.
type ConsumerService struct {
	db            *database.DB
	nats          *messaging.NATSClient
	repos         *repository.Repositories
	handlers      *Handlers
	completionJob *jobs.BookingCompletionJob
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	esClient, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)
	handlers := NewHandlers(repos, esClient)
	completionJob := jobs.NewBookingCompletionJob(repos.Bookings, natsClient, cfg.CompletionCheckInterval)

	return &ConsumerService{
		db:            db,
		nats:          natsClient,
		repos:         repos,
		handlers:      handlers,
		completionJob: completionJob,
	}, nil
}

func (cs *ConsumerService) Start(ctx context.Context) error {
	slog.Info("Starting NATS consumers...")

	// Изменения туров синхронизируются в поисковый индекс
	for _, subject := range []string{models.EventTourCreated, models.EventTourUpdated, models.EventTourDeleted} {
		if _, err := cs.nats.SubscribeQueue(subject, "consumers", cs.handlers.HandleTourChanged); err != nil {
			return err
		}
	}

	if _, err := cs.nats.SubscribeQueue(models.EventBookingCreated, "consumers", cs.handlers.HandleBookingCreated); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventPaymentRecorded, "consumers", cs.handlers.HandlePaymentRecorded); err != nil {
		return err
	}

	cs.completionJob.Start(ctx)

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	cs.completionJob.Stop()

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
