package models

import (
	"time"
)

// Статусы бронирования
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPaid      = "paid"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Роли пользователей
const (
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Client represents a travel agency client
type Client struct {
	ClientID         int64     `json:"client_id" db:"client_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         string    `json:"last_name" db:"last_name"`
	NameLatin        *string   `json:"name_latin" db:"name_latin"`
	PassportNumber   string    `json:"passport_number" db:"passport_number"`
	PassportExpiry   time.Time `json:"passport_expiry" db:"passport_expiry"`
	BirthDate        time.Time `json:"birth_date" db:"birth_date"`
	Gender           string    `json:"gender" db:"gender"`
	Phone            string    `json:"phone" db:"phone"`
	Email            *string   `json:"email" db:"email"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}

// Employee represents an agency employee
type Employee struct {
	EmployeeID int64     `json:"employee_id" db:"employee_id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Position   string    `json:"position" db:"position"`
	HireDate   time.Time `json:"hire_date" db:"hire_date"`
	Salary     float64   `json:"salary" db:"salary"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}

// Country represents a destination country
type Country struct {
	CountryID    int64     `json:"country_id" db:"country_id"`
	Name         string    `json:"name" db:"name"`
	VisaRequired bool      `json:"visa_required" db:"visa_required"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// City represents a city within a country
type City struct {
	CityID    int64  `json:"city_id" db:"city_id"`
	CountryID int64  `json:"country_id" db:"country_id"`
	Name      string `json:"name" db:"name"`
	IsPopular bool   `json:"is_popular" db:"is_popular"`
}

// Hotel represents a hotel in a city
type Hotel struct {
	HotelID   int64     `json:"hotel_id" db:"hotel_id"`
	CityID    int64     `json:"city_id" db:"city_id"`
	Name      string    `json:"name" db:"name"`
	Stars     int       `json:"stars" db:"stars"`
	BeachLine bool      `json:"beach_line" db:"beach_line"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TourType classifies tours
type TourType struct {
	TypeID      int64   `json:"type_id" db:"type_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

// Tour represents a tour offered by the agency
type Tour struct {
	TourID      int64       `json:"tour_id" db:"tour_id"`
	TypeID      int64       `json:"type_id" db:"type_id"`
	Title       string      `json:"title" db:"title"`
	Description *string     `json:"description" db:"description"`
	BasePrice   float64     `json:"base_price" db:"base_price"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	Hotels      []TourHotel `json:"hotels,omitempty"` // Not from DB, filled separately
}

// TourHotel represents the tour-hotel association with a nights count.
// Stars, BeachLine and HotelName are joined from the hotels table for pricing.
type TourHotel struct {
	TourID    int64  `json:"tour_id" db:"tour_id"`
	HotelID   int64  `json:"hotel_id" db:"hotel_id"`
	Nights    int    `json:"nights" db:"nights"`
	Stars     int    `json:"stars" db:"stars"`
	BeachLine bool   `json:"beach_line" db:"beach_line"`
	HotelName string `json:"hotel_name" db:"hotel_name"`
}

// Booking represents a booking in the system
type Booking struct {
	BookingID     int64     `json:"booking_id" db:"booking_id"`
	ClientID      int64     `json:"client_id" db:"client_id"`
	TourID        int64     `json:"tour_id" db:"tour_id"`
	EmployeeID    int64     `json:"employee_id" db:"employee_id"`
	BookingDate   time.Time `json:"booking_date" db:"booking_date"`
	DepartureDate time.Time `json:"departure_date" db:"departure_date"`
	ReturnDate    time.Time `json:"return_date" db:"return_date"`
	TotalPrice    float64   `json:"total_price" db:"total_price"`
	Status        string    `json:"status" db:"status"`
	IsPaid        bool      `json:"is_paid" db:"is_paid"`
	HasPrepayment bool      `json:"has_prepayment" db:"has_prepayment"`
	Payments      []Payment `json:"payments,omitempty"` // Not from DB, filled separately
}

// Payment represents a payment against a booking
type Payment struct {
	PaymentID     int64     `json:"payment_id" db:"payment_id"`
	BookingID     int64     `json:"booking_id" db:"booking_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentDate   time.Time `json:"payment_date" db:"payment_date"`
	Method        string    `json:"method" db:"method"`
	TransactionID *string   `json:"transaction_id" db:"transaction_id"`
}

// Review represents a client's review of a tour
type Review struct {
	ReviewID   int64     `json:"review_id" db:"review_id"`
	TourID     int64     `json:"tour_id" db:"tour_id"`
	ClientID   int64     `json:"client_id" db:"client_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    *string   `json:"comment" db:"comment"`
	ReviewDate time.Time `json:"review_date" db:"review_date"`
}

// User represents a system account
type User struct {
	UserID       int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	EmployeeID   *int64    `json:"employee_id" db:"employee_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PaymentCompletes reports whether the accumulated payments cover the booking total.
// Перевод бронирования в статус "paid" происходит только по этому условию.
func PaymentCompletes(totalPaid, totalPrice float64) bool {
	return totalPaid >= totalPrice
}
