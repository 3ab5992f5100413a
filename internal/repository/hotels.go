package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type HotelRepository struct {
	db *database.DB
}

func NewHotelRepository(db *database.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	query := `
		INSERT INTO hotels (city_id, name, stars, beach_line)
		VALUES ($1, $2, $3, $4)
		RETURNING hotel_id, created_at`

	return r.db.QueryRowContext(ctx, query,
		hotel.CityID,
		hotel.Name,
		hotel.Stars,
		hotel.BeachLine,
	).Scan(&hotel.HotelID, &hotel.CreatedAt)
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*models.Hotel, error) {
	hotel := &models.Hotel{}
	query := `SELECT hotel_id, city_id, name, stars, beach_line, created_at
		FROM hotels WHERE hotel_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&hotel.HotelID,
		&hotel.CityID,
		&hotel.Name,
		&hotel.Stars,
		&hotel.BeachLine,
		&hotel.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return hotel, err
}

// List возвращает отели, опционально только одного города (cityID = 0 - все)
func (r *HotelRepository) List(ctx context.Context, cityID int64) ([]models.Hotel, error) {
	var hotels []models.Hotel
	query := `SELECT hotel_id, city_id, name, stars, beach_line, created_at
		FROM hotels
		WHERE $1 = 0 OR city_id = $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, cityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hotel models.Hotel
		err := rows.Scan(
			&hotel.HotelID,
			&hotel.CityID,
			&hotel.Name,
			&hotel.Stars,
			&hotel.BeachLine,
			&hotel.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}

func (r *HotelRepository) Update(ctx context.Context, hotel *models.Hotel) error {
	query := `
		UPDATE hotels
		SET city_id = $1, name = $2, stars = $3, beach_line = $4
		WHERE hotel_id = $5`

	_, err := r.db.ExecContext(ctx, query,
		hotel.CityID,
		hotel.Name,
		hotel.Stars,
		hotel.BeachLine,
		hotel.HotelID,
	)

	return err
}

// CountTourLinks возвращает число связей отеля с турами
func (r *HotelRepository) CountTourLinks(ctx context.Context, hotelID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tour_hotels WHERE hotel_id = $1`, hotelID).Scan(&count)
	return count, err
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE hotel_id = $1`, id)
	return err
}
