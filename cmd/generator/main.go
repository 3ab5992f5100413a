package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"travelagency/internal/config"
	"travelagency/internal/database"
	"travelagency/internal/models"
	"travelagency/internal/repository"
)

var (
	adminPassword = flag.String("admin-password", "admin12345", "Password for the seeded admin account")
	skipCatalog   = flag.Bool("skip-catalog", false, "Seed only the admin account, skip sample catalog data")
)

// Seeder наполняет пустую базу стартовыми данными: учетной записью
// администратора и небольшим демонстрационным справочником.
type Seeder struct {
	repos *repository.Repositories
}

func main() {
	flag.Parse()

	slog.Info("Starting data generator...")

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	seeder := &Seeder{repos: repository.NewRepositories(db)}
	ctx := context.Background()

	if err := seeder.SeedAdmin(ctx, *adminPassword); err != nil {
		slog.Error("Failed to seed admin account", "error", err)
		os.Exit(1)
	}

	if !*skipCatalog {
		if err := seeder.SeedCatalog(ctx); err != nil {
			slog.Error("Failed to seed catalog", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Data generation completed successfully!")
}

// SeedAdmin создает учетную запись admin, если ее еще нет
func (s *Seeder) SeedAdmin(ctx context.Context, password string) error {
	existing, err := s.repos.Users.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		slog.Info("Admin account already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		return err
	}

	slog.Info("Seeded admin account", "user_id", user.UserID)
	return nil
}

// SeedCatalog наполняет справочники демонстрационными данными
func (s *Seeder) SeedCatalog(ctx context.Context) error {
	countries, err := s.repos.Countries.List(ctx)
	if err != nil {
		return err
	}
	if len(countries) > 0 {
		slog.Info("Catalog already seeded, skipping")
		return nil
	}

	country := &models.Country{Name: "Турция", VisaRequired: false}
	if err := s.repos.Countries.Create(ctx, country); err != nil {
		return err
	}

	city := &models.City{CountryID: country.CountryID, Name: "Анталия", IsPopular: true}
	if err := s.repos.Cities.Create(ctx, city); err != nil {
		return err
	}

	hotels := []*models.Hotel{
		{CityID: city.CityID, Name: "Sun Beach Resort", Stars: 5, BeachLine: true},
		{CityID: city.CityID, Name: "City Garden Hotel", Stars: 3, BeachLine: false},
	}
	for _, hotel := range hotels {
		if err := s.repos.Hotels.Create(ctx, hotel); err != nil {
			return err
		}
	}

	description := "Пляжный отдых"
	tourType := &models.TourType{Name: "Пляжный", Description: &description}
	if err := s.repos.TourTypes.Create(ctx, tourType); err != nil {
		return err
	}

	tourDescription := "Неделя в Анталии, все включено"
	tour := &models.Tour{
		TypeID:      tourType.TypeID,
		Title:       "Анталия все включено",
		Description: &tourDescription,
		BasePrice:   500,
		IsActive:    true,
		Hotels: []models.TourHotel{
			{HotelID: hotels[0].HotelID, Nights: 7},
		},
	}
	if err := s.repos.Tours.Create(ctx, tour); err != nil {
		return err
	}

	employee := &models.Employee{
		FirstName: "Мария",
		LastName:  "Иванова",
		Position:  "Менеджер",
		HireDate:  time.Now().AddDate(-1, 0, 0),
		Salary:    90000,
		IsActive:  true,
	}
	if err := s.repos.Employees.Create(ctx, employee); err != nil {
		return err
	}

	slog.Info("Seeded sample catalog",
		"country_id", country.CountryID,
		"tour_id", tour.TourID,
		"employee_id", employee.EmployeeID)
	return nil
}
