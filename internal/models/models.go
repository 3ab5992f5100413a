package models

// CreateClientRequest - модель для создания клиента
type CreateClientRequest struct {
	FirstName      string  `json:"first_name" binding:"required" validate:"required,max=50"`
	LastName       string  `json:"last_name" binding:"required" validate:"required,max=50"`
	NameLatin      *string `json:"name_latin" validate:"omitempty,max=100"`
	PassportNumber string  `json:"passport_number" binding:"required" validate:"required,max=20"`
	PassportExpiry string  `json:"passport_expiry" binding:"required"` // YYYY-MM-DD
	BirthDate      string  `json:"birth_date" binding:"required"`      // YYYY-MM-DD
	Gender         string  `json:"gender" binding:"required" validate:"required,oneof=male female"`
	Phone          string  `json:"phone" binding:"required" validate:"required,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// UpdateClientRequest - модель для обновления клиента
type UpdateClientRequest struct {
	FirstName      *string `json:"first_name" validate:"omitempty,max=50"`
	LastName       *string `json:"last_name" validate:"omitempty,max=50"`
	NameLatin      *string `json:"name_latin" validate:"omitempty,max=100"`
	PassportNumber *string `json:"passport_number" validate:"omitempty,max=20"`
	PassportExpiry *string `json:"passport_expiry"`
	BirthDate      *string `json:"birth_date"`
	Gender         *string `json:"gender" validate:"omitempty,oneof=male female"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// CreateIDResponse - общий ответ операций создания
type CreateIDResponse struct {
	ID int64 `json:"id"`
}

// CreateCountryRequest - модель для создания страны
type CreateCountryRequest struct {
	Name         string `json:"name" binding:"required" validate:"required,max=100"`
	VisaRequired bool   `json:"visa_required"`
}

// CreateCityRequest - модель для создания города
type CreateCityRequest struct {
	CountryID int64  `json:"country_id" binding:"required"`
	Name      string `json:"name" binding:"required" validate:"required,max=100"`
	IsPopular bool   `json:"is_popular"`
}

// CreateHotelRequest - модель для создания отеля
type CreateHotelRequest struct {
	CityID    int64  `json:"city_id" binding:"required"`
	Name      string `json:"name" binding:"required" validate:"required,max=100"`
	Stars     int    `json:"stars" binding:"required" validate:"required,min=1,max=5"`
	BeachLine bool   `json:"beach_line"`
}

// CreateTourTypeRequest - модель для создания типа тура
type CreateTourTypeRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required,max=50"`
	Description *string `json:"description"`
}

// TourHotelRequest - связь тур-отель в запросах
type TourHotelRequest struct {
	HotelID int64 `json:"hotel_id" binding:"required"`
	Nights  int   `json:"nights" binding:"required" validate:"required,gt=0"`
}

// CreateTourRequest - модель для создания тура
type CreateTourRequest struct {
	TypeID      int64              `json:"type_id" binding:"required"`
	Title       string             `json:"title" binding:"required" validate:"required,max=200"`
	Description *string            `json:"description"`
	BasePrice   float64            `json:"base_price" binding:"required" validate:"required,gt=0"`
	IsActive    *bool              `json:"is_active"`
	Hotels      []TourHotelRequest `json:"hotels" validate:"dive"`
}

// UpdateTourRequest - модель для обновления тура
type UpdateTourRequest struct {
	TypeID      *int64             `json:"type_id"`
	Title       *string            `json:"title" validate:"omitempty,max=200"`
	Description *string            `json:"description"`
	BasePrice   *float64           `json:"base_price" validate:"omitempty,gt=0"`
	IsActive    *bool              `json:"is_active"`
	Hotels      []TourHotelRequest `json:"hotels" validate:"dive"`
}

// SearchToursRequest - параметры поиска туров
type SearchToursRequest struct {
	Query      string   `form:"query"`
	PriceMin   *float64 `form:"price_min"`
	PriceMax   *float64 `form:"price_max"`
	OnlyActive bool     `form:"only_active"`
}

// CreateBookingRequest - модель для создания бронирования
type CreateBookingRequest struct {
	ClientID      int64  `json:"client_id" binding:"required"`
	TourID        int64  `json:"tour_id" binding:"required"`
	EmployeeID    int64  `json:"employee_id" binding:"required"`
	DepartureDate string `json:"departure_date" binding:"required"` // YYYY-MM-DD
	ReturnDate    string `json:"return_date" binding:"required"`    // YYYY-MM-DD
	Status        string `json:"status" validate:"omitempty,oneof=confirmed paid cancelled completed"`
	HasPrepayment bool   `json:"has_prepayment"`
}

// CreateBookingResponse - ответ при создании бронирования
type CreateBookingResponse struct {
	ID         int64   `json:"id"`
	TotalPrice float64 `json:"total_price"`
}

// UpdateBookingRequest - модель для правки бронирования
type UpdateBookingRequest struct {
	DepartureDate *string  `json:"departure_date"`
	ReturnDate    *string  `json:"return_date"`
	TotalPrice    *float64 `json:"total_price" validate:"omitempty,gt=0"`
	Status        *string  `json:"status" validate:"omitempty,oneof=confirmed paid cancelled completed"`
	HasPrepayment *bool    `json:"has_prepayment"`
}

// RecordPaymentRequest - модель для регистрации платежа.
// BookingID берется из пути запроса, в теле не передается.
type RecordPaymentRequest struct {
	BookingID     int64   `json:"-"`
	Amount        float64 `json:"amount" binding:"required" validate:"required,gt=0"`
	Method        string  `json:"method" binding:"required" validate:"required,max=20"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
}

// RecordPaymentResponse - ответ при регистрации платежа
type RecordPaymentResponse struct {
	PaymentID     int64   `json:"payment_id"`
	TotalPaid     float64 `json:"total_paid"`
	BookingStatus string  `json:"booking_status"`
}

// BookingListItem - строка списка бронирований с присоединенными именами
type BookingListItem struct {
	BookingID     int64   `json:"booking_id" db:"booking_id"`
	ClientName    string  `json:"client_name" db:"client_name"`
	TourTitle     string  `json:"tour_title" db:"tour_title"`
	BookingDate   string  `json:"booking_date"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    string  `json:"return_date"`
	TotalPrice    float64 `json:"total_price" db:"total_price"`
	Status        string  `json:"status" db:"status"`
}

// CreateEmployeeRequest - модель для создания сотрудника
type CreateEmployeeRequest struct {
	FirstName string  `json:"first_name" binding:"required" validate:"required,max=50"`
	LastName  string  `json:"last_name" binding:"required" validate:"required,max=50"`
	Position  string  `json:"position" binding:"required" validate:"required,max=50"`
	HireDate  string  `json:"hire_date" binding:"required"` // YYYY-MM-DD
	Salary    float64 `json:"salary" binding:"required" validate:"required,gt=0"`
	IsActive  *bool   `json:"is_active"`
}

// UpdateEmployeeRequest - модель для обновления сотрудника
type UpdateEmployeeRequest struct {
	FirstName *string  `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string  `json:"last_name" validate:"omitempty,max=50"`
	Position  *string  `json:"position" validate:"omitempty,max=50"`
	Salary    *float64 `json:"salary" validate:"omitempty,gt=0"`
	IsActive  *bool    `json:"is_active"`
}

// CreateReviewRequest - модель для создания отзыва
type CreateReviewRequest struct {
	TourID   int64   `json:"tour_id" binding:"required"`
	ClientID int64   `json:"client_id" binding:"required"`
	Rating   int     `json:"rating" binding:"required" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

// CreateUserRequest - модель для создания пользователя
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required" validate:"required,max=50"`
	Password   string `json:"password" binding:"required" validate:"required,min=8"`
	Role       string `json:"role" binding:"required" validate:"required,oneof=manager admin"`
	EmployeeID *int64 `json:"employee_id"`
}

// ImportClientsResponse - итог импорта клиентов
type ImportClientsResponse struct {
	Imported int `json:"imported"`
}
