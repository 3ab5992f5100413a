package models

import "time"

// NATS Event Types
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingCompleted = "booking.completed"
	EventPaymentRecorded  = "payment.recorded"
	EventTourCreated      = "tour.created"
	EventTourUpdated      = "tour.updated"
	EventTourDeleted      = "tour.deleted"
	EventClientsImported  = "clients.imported"
)

// BookingCreatedEvent represents a booking creation event
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ClientID   int64     `json:"client_id"`
	TourID     int64     `json:"tour_id"`
	EmployeeID int64     `json:"employee_id"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// BookingCancelledEvent represents a booking cancellation event
type BookingCancelledEvent struct {
	BookingID int64     `json:"booking_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCompletedEvent represents a booking moved to the completed state
type BookingCompletedEvent struct {
	BookingID  int64     `json:"booking_id"`
	ReturnDate time.Time `json:"return_date"`
	Timestamp  time.Time `json:"timestamp"`
}

// PaymentRecordedEvent represents a recorded payment
type PaymentRecordedEvent struct {
	PaymentID     int64     `json:"payment_id"`
	BookingID     int64     `json:"booking_id"`
	Amount        float64   `json:"amount"`
	TotalPaid     float64   `json:"total_paid"`
	BookingStatus string    `json:"booking_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// TourChangedEvent represents a tour create/update/delete, consumed by the index sync
type TourChangedEvent struct {
	TourID    int64     `json:"tour_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ClientsImportedEvent represents a completed CSV import
type ClientsImportedEvent struct {
	Imported  int       `json:"imported"`
	Timestamp time.Time `json:"timestamp"`
}
