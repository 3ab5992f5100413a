package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type TourTypeRepository struct {
	db *database.DB
}

func NewTourTypeRepository(db *database.DB) *TourTypeRepository {
	return &TourTypeRepository{db: db}
}

func (r *TourTypeRepository) Create(ctx context.Context, tourType *models.TourType) error {
	query := `
		INSERT INTO tour_types (name, description)
		VALUES ($1, $2)
		RETURNING type_id`

	return r.db.QueryRowContext(ctx, query,
		tourType.Name,
		tourType.Description,
	).Scan(&tourType.TypeID)
}

func (r *TourTypeRepository) GetByID(ctx context.Context, id int64) (*models.TourType, error) {
	tourType := &models.TourType{}
	query := `SELECT type_id, name, description FROM tour_types WHERE type_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tourType.TypeID,
		&tourType.Name,
		&tourType.Description,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return tourType, err
}

func (r *TourTypeRepository) List(ctx context.Context) ([]models.TourType, error) {
	var types []models.TourType
	query := `SELECT type_id, name, description FROM tour_types ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tourType models.TourType
		if err := rows.Scan(&tourType.TypeID, &tourType.Name, &tourType.Description); err != nil {
			return nil, err
		}
		types = append(types, tourType)
	}

	return types, rows.Err()
}

func (r *TourTypeRepository) Update(ctx context.Context, tourType *models.TourType) error {
	query := `UPDATE tour_types SET name = $1, description = $2 WHERE type_id = $3`
	_, err := r.db.ExecContext(ctx, query, tourType.Name, tourType.Description, tourType.TypeID)
	return err
}

// CountTours возвращает число туров данного типа
func (r *TourTypeRepository) CountTours(ctx context.Context, typeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tours WHERE type_id = $1`, typeID).Scan(&count)
	return count, err
}

func (r *TourTypeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tour_types WHERE type_id = $1`, id)
	return err
}
