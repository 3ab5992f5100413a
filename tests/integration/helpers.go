// Package integration contains tests that run against a real Postgres
// database. They are skipped unless INTEGRATION_TESTS is set; connection
// parameters come from the usual DB_* environment variables (see
// internal/config). Migrations are applied on setup, so a fresh database
// is enough:
//
//	INTEGRATION_TESTS=1 DB_NAME=travel_agency_test go test ./tests/integration/
package integration

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"travelagency/internal/config"
	"travelagency/internal/database"
	"travelagency/internal/models"
	"travelagency/internal/repository"
)

var seq atomic.Int64

// uniqueSuffix дает короткое уникальное значение для паспортов, email и
// названий, чтобы тесты не сталкивались на уникальных ограничениях схемы
func uniqueSuffix() string {
	return fmt.Sprintf("%d%03d", time.Now().UnixNano()%1_000_000_000_000_000, seq.Add(1))
}

func setupTestDB(t *testing.T) *repository.Repositories {
	t.Helper()

	if os.Getenv("INTEGRATION_TESTS") == "" {
		t.Skip("set INTEGRATION_TESTS=1 (and DB_* variables) to run database tests")
	}

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewRepositories(db)
}

// LogTestStep logs a test step with formatting
func LogTestStep(t *testing.T, step string) {
	t.Logf("🔹 %s", step)
}

// LogTestResult logs a test result with formatting
func LogTestResult(t *testing.T, result string) {
	t.Logf("✅ %s", result)
}

func newClientRequest(suffix string) *models.CreateClientRequest {
	email := fmt.Sprintf("client%s@example.com", suffix)
	return &models.CreateClientRequest{
		FirstName:      "Иван",
		LastName:       "Иванов",
		PassportNumber: "P" + suffix,
		PassportExpiry: time.Now().AddDate(3, 0, 0).Format("2006-01-02"),
		BirthDate:      "1990-05-20",
		Gender:         "male",
		Phone:          "+7 777 123-45-67",
		Email:          &email,
	}
}

func createTestClient(t *testing.T, repos *repository.Repositories) *models.Client {
	t.Helper()

	suffix := uniqueSuffix()
	email := fmt.Sprintf("client%s@example.com", suffix)
	client := &models.Client{
		FirstName:      "Анна",
		LastName:       "Петрова",
		PassportNumber: "P" + suffix,
		PassportExpiry: time.Now().AddDate(5, 0, 0),
		BirthDate:      time.Date(1992, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:         "female",
		Phone:          "+7 700 000-00-00",
		Email:          &email,
	}
	if err := repos.Clients.Create(context.Background(), client); err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return client
}

func createTestEmployee(t *testing.T, repos *repository.Repositories) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		FirstName: "Олег",
		LastName:  "Смирнов",
		Position:  "manager",
		HireDate:  time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
		Salary:    95000,
		IsActive:  true,
	}
	if err := repos.Employees.Create(context.Background(), employee); err != nil {
		t.Fatalf("Failed to create test employee: %v", err)
	}
	return employee
}

// catalogFixture - минимальный набор справочников для одного тура
type catalogFixture struct {
	Country  *models.Country
	City     *models.City
	Hotel    *models.Hotel
	TourType *models.TourType
	Tour     *models.Tour
}

func createTestCatalog(t *testing.T, repos *repository.Repositories) *catalogFixture {
	t.Helper()
	ctx := context.Background()
	suffix := uniqueSuffix()

	country := &models.Country{Name: "Страна " + suffix, VisaRequired: false}
	if err := repos.Countries.Create(ctx, country); err != nil {
		t.Fatalf("Failed to create test country: %v", err)
	}

	city := &models.City{CountryID: country.CountryID, Name: "Город " + suffix, IsPopular: true}
	if err := repos.Cities.Create(ctx, city); err != nil {
		t.Fatalf("Failed to create test city: %v", err)
	}

	hotel := &models.Hotel{CityID: city.CityID, Name: "Отель " + suffix, Stars: 4, BeachLine: false}
	if err := repos.Hotels.Create(ctx, hotel); err != nil {
		t.Fatalf("Failed to create test hotel: %v", err)
	}

	tourType := &models.TourType{Name: "type-" + suffix}
	if err := repos.TourTypes.Create(ctx, tourType); err != nil {
		t.Fatalf("Failed to create test tour type: %v", err)
	}

	tour := &models.Tour{
		TypeID:    tourType.TypeID,
		Title:     "Тур " + suffix,
		BasePrice: 1000,
		IsActive:  true,
		Hotels: []models.TourHotel{
			{HotelID: hotel.HotelID, Nights: 7},
		},
	}
	if err := repos.Tours.Create(ctx, tour); err != nil {
		t.Fatalf("Failed to create test tour: %v", err)
	}

	return &catalogFixture{
		Country:  country,
		City:     city,
		Hotel:    hotel,
		TourType: tourType,
		Tour:     tour,
	}
}

func createTestBooking(t *testing.T, repos *repository.Repositories, clientID, tourID, employeeID int64, totalPrice float64) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		ClientID:      clientID,
		TourID:        tourID,
		EmployeeID:    employeeID,
		DepartureDate: time.Now().AddDate(0, 1, 0),
		ReturnDate:    time.Now().AddDate(0, 1, 7),
		TotalPrice:    totalPrice,
		Status:        models.BookingStatusConfirmed,
	}
	if err := repos.Bookings.Create(context.Background(), booking); err != nil {
		t.Fatalf("Failed to create test booking: %v", err)
	}
	return booking
}
