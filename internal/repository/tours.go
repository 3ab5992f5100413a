package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type TourRepository struct {
	db *database.DB
}

func NewTourRepository(db *database.DB) *TourRepository {
	return &TourRepository{db: db}
}

// Create вставляет тур вместе со связями тур-отель в одной транзакции
func (r *TourRepository) Create(ctx context.Context, tour *models.Tour) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO tours (type_id, title, description, base_price, is_active)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING tour_id, created_at`

		err := tx.QueryRowContext(ctx, query,
			tour.TypeID,
			tour.Title,
			tour.Description,
			tour.BasePrice,
			tour.IsActive,
		).Scan(&tour.TourID, &tour.CreatedAt)
		if err != nil {
			return err
		}

		for _, th := range tour.Hotels {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tour_hotels (tour_id, hotel_id, nights) VALUES ($1, $2, $3)`,
				tour.TourID, th.HotelID, th.Nights)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*models.Tour, error) {
	tour := &models.Tour{}
	query := `SELECT tour_id, type_id, title, description, base_price, is_active, created_at
		FROM tours WHERE tour_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tour.TourID,
		&tour.TypeID,
		&tour.Title,
		&tour.Description,
		&tour.BasePrice,
		&tour.IsActive,
		&tour.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	hotels, err := r.GetHotels(ctx, id)
	if err != nil {
		return nil, err
	}
	tour.Hotels = hotels

	return tour, nil
}

// GetHotels возвращает связи тур-отель с данными отеля для расчета цены.
// Порядок по hotel_id фиксирован: от него зависит результат расчета.
func (r *TourRepository) GetHotels(ctx context.Context, tourID int64) ([]models.TourHotel, error) {
	var hotels []models.TourHotel
	query := `
		SELECT th.tour_id, th.hotel_id, th.nights, h.stars, h.beach_line, h.name
		FROM tour_hotels th
		JOIN hotels h ON h.hotel_id = th.hotel_id
		WHERE th.tour_id = $1
		ORDER BY th.hotel_id`

	rows, err := r.db.QueryContext(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var th models.TourHotel
		err := rows.Scan(
			&th.TourID,
			&th.HotelID,
			&th.Nights,
			&th.Stars,
			&th.BeachLine,
			&th.HotelName,
		)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, th)
	}

	return hotels, rows.Err()
}

func (r *TourRepository) List(ctx context.Context, onlyActive bool) ([]models.Tour, error) {
	var tours []models.Tour
	query := `SELECT tour_id, type_id, title, description, base_price, is_active, created_at
		FROM tours
		WHERE $1 = FALSE OR is_active
		ORDER BY tour_id`

	rows, err := r.db.QueryContext(ctx, query, onlyActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tour models.Tour
		err := rows.Scan(
			&tour.TourID,
			&tour.TypeID,
			&tour.Title,
			&tour.Description,
			&tour.BasePrice,
			&tour.IsActive,
			&tour.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}

	return tours, rows.Err()
}

// Update обновляет тур; при replaceHotels связи тур-отель заменяются целиком
func (r *TourRepository) Update(ctx context.Context, tour *models.Tour, replaceHotels bool) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE tours
			SET type_id = $1, title = $2, description = $3, base_price = $4, is_active = $5
			WHERE tour_id = $6`

		_, err := tx.ExecContext(ctx, query,
			tour.TypeID,
			tour.Title,
			tour.Description,
			tour.BasePrice,
			tour.IsActive,
			tour.TourID,
		)
		if err != nil {
			return err
		}

		if !replaceHotels {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM tour_hotels WHERE tour_id = $1`, tour.TourID); err != nil {
			return err
		}

		for _, th := range tour.Hotels {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO tour_hotels (tour_id, hotel_id, nights) VALUES ($1, $2, $3)`,
				tour.TourID, th.HotelID, th.Nights)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// CountBookings возвращает число бронирований тура
func (r *TourRepository) CountBookings(ctx context.Context, tourID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE tour_id = $1`, tourID).Scan(&count)
	return count, err
}

// Delete удаляет тур и его связи с отелями в одной транзакции
func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tour_hotels WHERE tour_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM tours WHERE tour_id = $1`, id)
		return err
	})
}
