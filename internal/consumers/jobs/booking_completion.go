package jobs

import (
	"context"
	"log/slog"
	"time"

	"travelagency/internal/messaging"
	"travelagency/internal/models"
	"travelagency/internal/repository"
)

// BookingCompletionJob переводит оплаченные бронирования с прошедшей датой
// возвращения в статус completed
type BookingCompletionJob struct {
	bookingRepo *repository.BookingRepository
	natsClient  *messaging.NATSClient
	interval    time.Duration
	ticker      *time.Ticker
	done        chan bool
}

func NewBookingCompletionJob(bookingRepo *repository.BookingRepository, natsClient *messaging.NATSClient, interval time.Duration) *BookingCompletionJob {
	return &BookingCompletionJob{
		bookingRepo: bookingRepo,
		natsClient:  natsClient,
		interval:    interval,
		done:        make(chan bool),
	}
}

// Start запускает периодическую проверку
func (j *BookingCompletionJob) Start(ctx context.Context) {
	slog.Info("Starting booking completion job", "check_interval", j.interval.String())

	j.ticker = time.NewTicker(j.interval)

	// Первая проверка сразу при старте
	go j.completeFinishedBookings(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				go j.completeFinishedBookings(ctx)
			case <-j.done:
				slog.Info("Booking completion job stopped")
				return
			}
		}
	}()
}

// Stop останавливает задачу
func (j *BookingCompletionJob) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *BookingCompletionJob) completeFinishedBookings(ctx context.Context) {
	bookings, err := j.bookingRepo.GetPaidPastReturn(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to get finished bookings", "error", err)
		return
	}

	if len(bookings) == 0 {
		slog.Debug("No finished bookings found")
		return
	}

	slog.Info("Found finished bookings to complete", "count", len(bookings))

	for _, booking := range bookings {
		if err := j.completeBooking(ctx, &booking); err != nil {
			slog.Error("Failed to complete booking",
				"error", err,
				"booking_id", booking.BookingID,
				"return_date", booking.ReturnDate)
		} else {
			slog.Info("Booking completed",
				"booking_id", booking.BookingID,
				"return_date", booking.ReturnDate)
		}
	}
}

func (j *BookingCompletionJob) completeBooking(ctx context.Context, booking *models.Booking) error {
	if err := j.bookingRepo.UpdateStatus(ctx, booking.BookingID, models.BookingStatusCompleted); err != nil {
		return err
	}

	event := models.BookingCompletedEvent{
		BookingID:  booking.BookingID,
		ReturnDate: booking.ReturnDate,
		Timestamp:  time.Now(),
	}
	if err := j.natsClient.Publish(models.EventBookingCompleted, event); err != nil {
		slog.Error("Failed to publish booking completed event",
			"error", err,
			"booking_id", booking.BookingID,
			"event_type", models.EventBookingCompleted)
		// Статус уже обновлен, ошибку публикации не поднимаем
	}

	return nil
}
