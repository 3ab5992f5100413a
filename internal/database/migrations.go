package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createEmployeesTable,
		createUsersTable,
		createCountriesTable,
		createCitiesTable,
		createHotelsTable,
		createTourTypesTable,
		createToursTable,
		createTourHotelsTable,
		createClientsTable,
		createBookingsTable,
		createPaymentsTable,
		createReviewsTable,
		createBookingsDateIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    employee_id SERIAL PRIMARY KEY,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    position VARCHAR(50) NOT NULL,
    hire_date DATE NOT NULL,
    salary DECIMAL(10,2) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,

    CHECK (salary > 0)
);`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    user_id SERIAL PRIMARY KEY,
    username VARCHAR(50) UNIQUE NOT NULL,
    password_hash VARCHAR(60) NOT NULL,
    role VARCHAR(20) NOT NULL,
    employee_id INTEGER REFERENCES employees(employee_id),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (role IN ('manager', 'admin'))
);`

const createCountriesTable = `
CREATE TABLE IF NOT EXISTS countries (
    country_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    visa_required BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createCitiesTable = `
CREATE TABLE IF NOT EXISTS cities (
    city_id SERIAL PRIMARY KEY,
    country_id INTEGER NOT NULL REFERENCES countries(country_id),
    name VARCHAR(100) NOT NULL,
    is_popular BOOLEAN NOT NULL DEFAULT FALSE,

    UNIQUE(country_id, name)
);`

const createHotelsTable = `
CREATE TABLE IF NOT EXISTS hotels (
    hotel_id SERIAL PRIMARY KEY,
    city_id INTEGER NOT NULL REFERENCES cities(city_id),
    name VARCHAR(100) NOT NULL,
    stars INTEGER NOT NULL,
    beach_line BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (stars BETWEEN 1 AND 5)
);`

const createTourTypesTable = `
CREATE TABLE IF NOT EXISTS tour_types (
    type_id SERIAL PRIMARY KEY,
    name VARCHAR(50) UNIQUE NOT NULL,
    description TEXT
);`

const createToursTable = `
CREATE TABLE IF NOT EXISTS tours (
    tour_id SERIAL PRIMARY KEY,
    type_id INTEGER NOT NULL REFERENCES tour_types(type_id),
    title VARCHAR(200) NOT NULL,
    description TEXT,
    base_price DECIMAL(10,2) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (base_price > 0)
);`

const createTourHotelsTable = `
CREATE TABLE IF NOT EXISTS tour_hotels (
    tour_id INTEGER NOT NULL REFERENCES tours(tour_id),
    hotel_id INTEGER NOT NULL REFERENCES hotels(hotel_id),
    nights INTEGER NOT NULL,

    PRIMARY KEY (tour_id, hotel_id),
    CHECK (nights > 0)
);`

const createClientsTable = `
CREATE TABLE IF NOT EXISTS clients (
    client_id SERIAL PRIMARY KEY,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    name_latin VARCHAR(100),
    passport_number VARCHAR(20) UNIQUE NOT NULL,
    passport_expiry DATE NOT NULL,
    birth_date DATE NOT NULL,
    gender VARCHAR(10) NOT NULL,
    phone VARCHAR(20) NOT NULL,
    email VARCHAR(100) UNIQUE,
    registration_date DATE NOT NULL DEFAULT CURRENT_DATE
);`

// Каскад clients -> bookings/reviews повторяет схему-первоисточник;
// прикладной запрет на удаление клиента с бронированиями живет уровнем выше.
const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    booking_id SERIAL PRIMARY KEY,
    client_id INTEGER NOT NULL REFERENCES clients(client_id) ON DELETE CASCADE,
    tour_id INTEGER NOT NULL REFERENCES tours(tour_id),
    employee_id INTEGER NOT NULL REFERENCES employees(employee_id),
    booking_date TIMESTAMP NOT NULL DEFAULT NOW(),
    departure_date DATE NOT NULL,
    return_date DATE NOT NULL,
    total_price DECIMAL(10,2) NOT NULL,
    status VARCHAR(20) NOT NULL,
    is_paid BOOLEAN NOT NULL DEFAULT FALSE,
    has_prepayment BOOLEAN NOT NULL DEFAULT FALSE,

    CHECK (return_date > departure_date),
    CHECK (total_price > 0),
    CHECK (status IN ('confirmed', 'paid', 'cancelled', 'completed'))
);`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
    payment_id SERIAL PRIMARY KEY,
    booking_id INTEGER NOT NULL REFERENCES bookings(booking_id) ON DELETE CASCADE,
    amount DECIMAL(10,2) NOT NULL,
    payment_date TIMESTAMP NOT NULL DEFAULT NOW(),
    method VARCHAR(20) NOT NULL,
    transaction_id VARCHAR(100) UNIQUE,

    CHECK (amount > 0)
);`

const createReviewsTable = `
CREATE TABLE IF NOT EXISTS reviews (
    review_id SERIAL PRIMARY KEY,
    tour_id INTEGER NOT NULL REFERENCES tours(tour_id),
    client_id INTEGER NOT NULL REFERENCES clients(client_id) ON DELETE CASCADE,
    rating INTEGER NOT NULL,
    comment TEXT,
    review_date DATE NOT NULL DEFAULT CURRENT_DATE,

    CHECK (rating BETWEEN 1 AND 5),
    UNIQUE(tour_id, client_id)
);`

const createBookingsDateIndex = `
CREATE INDEX IF NOT EXISTS bookings_departure_date_idx
ON bookings (departure_date);`
