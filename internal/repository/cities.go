package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type CityRepository struct {
	db *database.DB
}

func NewCityRepository(db *database.DB) *CityRepository {
	return &CityRepository{db: db}
}

func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	query := `
		INSERT INTO cities (country_id, name, is_popular)
		VALUES ($1, $2, $3)
		RETURNING city_id`

	return r.db.QueryRowContext(ctx, query,
		city.CountryID,
		city.Name,
		city.IsPopular,
	).Scan(&city.CityID)
}

func (r *CityRepository) GetByID(ctx context.Context, id int64) (*models.City, error) {
	city := &models.City{}
	query := `SELECT city_id, country_id, name, is_popular FROM cities WHERE city_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&city.CityID,
		&city.CountryID,
		&city.Name,
		&city.IsPopular,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return city, err
}

// List возвращает города, опционально только одной страны (countryID = 0 - все)
func (r *CityRepository) List(ctx context.Context, countryID int64) ([]models.City, error) {
	var cities []models.City
	query := `SELECT city_id, country_id, name, is_popular FROM cities
		WHERE $1 = 0 OR country_id = $1
		ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.CityID, &city.CountryID, &city.Name, &city.IsPopular); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

func (r *CityRepository) Update(ctx context.Context, city *models.City) error {
	query := `UPDATE cities SET country_id = $1, name = $2, is_popular = $3 WHERE city_id = $4`
	_, err := r.db.ExecContext(ctx, query, city.CountryID, city.Name, city.IsPopular, city.CityID)
	return err
}

// CountHotels возвращает число отелей города
func (r *CityRepository) CountHotels(ctx context.Context, cityID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels WHERE city_id = $1`, cityID).Scan(&count)
	return count, err
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE city_id = $1`, id)
	return err
}
