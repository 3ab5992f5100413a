package service

import (
	"context"
	"time"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/logger"
	"travelagency/internal/messaging"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

type BookingService struct {
	bookingRepo  *repository.BookingRepository
	clientRepo   *repository.ClientRepository
	tourRepo     *repository.TourRepository
	employeeRepo *repository.EmployeeRepository
	natsClient   *messaging.NATSClient
}

func NewBookingService(bookingRepo *repository.BookingRepository, clientRepo *repository.ClientRepository, tourRepo *repository.TourRepository, employeeRepo *repository.EmployeeRepository, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		tourRepo:     tourRepo,
		employeeRepo: employeeRepo,
		natsClient:   natsClient,
	}
}

// Create создает бронирование. Полная стоимость вычисляется здесь по ценовому
// правилу тура и дат и сохраняется в записи; дальше она живет своей жизнью
// и меняется только явной правкой бронирования.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.CreateBookingResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	departure, err := validation.ParseDate(req.DepartureDate, "departure_date")
	if err != nil {
		return nil, err
	}
	returnDate, err := validation.ParseDate(req.ReturnDate, "return_date")
	if err != nil {
		return nil, err
	}
	if err := validation.DateRange(departure, returnDate); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("client %d not found", req.ClientID)
	}

	tour, err := s.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if tour == nil {
		return nil, apperrors.NotFound("tour %d not found", req.TourID)
	}

	employee, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if employee == nil {
		return nil, apperrors.NotFound("employee %d not found", req.EmployeeID)
	}

	status := req.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	booking := &models.Booking{
		ClientID:      req.ClientID,
		TourID:        req.TourID,
		EmployeeID:    req.EmployeeID,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		TotalPrice:    ComputeTotal(tour.BasePrice, tour.Hotels, departure, returnDate),
		Status:        status,
		HasPrepayment: req.HasPrepayment,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	event := models.BookingCreatedEvent{
		BookingID:  booking.BookingID,
		ClientID:   booking.ClientID,
		TourID:     booking.TourID,
		EmployeeID: booking.EmployeeID,
		TotalPrice: booking.TotalPrice,
		Timestamp:  time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCreated, event); err != nil {
		// Log error but don't fail the operation
		logger.WithContext(ctx).Error("Failed to publish booking created event",
			"error", err,
			"booking_id", booking.BookingID,
			"event_type", models.EventBookingCreated)
	}

	return &models.CreateBookingResponse{ID: booking.BookingID, TotalPrice: booking.TotalPrice}, nil
}

// RecordPayment регистрирует платеж. Если накопленная сумма платежей достигает
// полной стоимости, бронирование переводится в "paid" в той же транзакции;
// частичная оплата статус не меняет.
func (s *BookingService) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) (*models.RecordPaymentResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking %d not found", req.BookingID)
	}

	transactionID := req.TransactionID
	if transactionID != nil && *transactionID == "" {
		transactionID = nil
	}

	payment := &models.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: transactionID,
	}

	totalPaid, status, err := s.bookingRepo.RecordPayment(ctx, payment)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	event := models.PaymentRecordedEvent{
		PaymentID:     payment.PaymentID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		TotalPaid:     totalPaid,
		BookingStatus: status,
		Timestamp:     time.Now(),
	}
	if err := s.natsClient.Publish(models.EventPaymentRecorded, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish payment recorded event",
			"error", err,
			"booking_id", payment.BookingID,
			"event_type", models.EventPaymentRecorded)
	}

	return &models.RecordPaymentResponse{
		PaymentID:     payment.PaymentID,
		TotalPaid:     totalPaid,
		BookingStatus: status,
	}, nil
}

// Cancel отменяет бронирование; отмена возможна из confirmed и paid
func (s *BookingService) Cancel(ctx context.Context, id int64, reason string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if booking == nil {
		return apperrors.NotFound("booking %d not found", id)
	}

	if booking.Status != models.BookingStatusConfirmed && booking.Status != models.BookingStatusPaid {
		return apperrors.ValidationFailed("booking %d cannot be cancelled from status %s", id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return apperrors.FromPostgres(err)
	}

	event := models.BookingCancelledEvent{
		BookingID: id,
		Reason:    reason,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(models.EventBookingCancelled, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking cancelled event",
			"error", err,
			"booking_id", id,
			"event_type", models.EventBookingCancelled)
	}

	return nil
}

func (s *BookingService) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.Booking, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking %d not found", id)
	}

	if req.DepartureDate != nil {
		departure, err := validation.ParseDate(*req.DepartureDate, "departure_date")
		if err != nil {
			return nil, err
		}
		booking.DepartureDate = departure
	}
	if req.ReturnDate != nil {
		returnDate, err := validation.ParseDate(*req.ReturnDate, "return_date")
		if err != nil {
			return nil, err
		}
		booking.ReturnDate = returnDate
	}
	if err := validation.DateRange(booking.DepartureDate, booking.ReturnDate); err != nil {
		return nil, err
	}

	if req.TotalPrice != nil {
		booking.TotalPrice = *req.TotalPrice
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}
	if req.HasPrepayment != nil {
		booking.HasPrepayment = *req.HasPrepayment
	}

	// is_paid следует за статусом; путь регистрации платежей поддерживает
	// тот же инвариант
	booking.IsPaid = booking.Status == models.BookingStatusPaid

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if booking == nil {
		return apperrors.NotFound("booking %d not found", id)
	}

	// Платежи бронирования удаляет каскад в схеме
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}

	return nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking %d not found", id)
	}

	payments, err := s.bookingRepo.GetPayments(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	booking.Payments = payments

	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.BookingListItem, error) {
	items, err := s.bookingRepo.ListJoined(ctx)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return items, nil
}
