package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type CountryRepository struct {
	db *database.DB
}

func NewCountryRepository(db *database.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) Create(ctx context.Context, country *models.Country) error {
	query := `
		INSERT INTO countries (name, visa_required)
		VALUES ($1, $2)
		RETURNING country_id, created_at`

	return r.db.QueryRowContext(ctx, query,
		country.Name,
		country.VisaRequired,
	).Scan(&country.CountryID, &country.CreatedAt)
}

func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	country := &models.Country{}
	query := `SELECT country_id, name, visa_required, created_at FROM countries WHERE country_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&country.CountryID,
		&country.Name,
		&country.VisaRequired,
		&country.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return country, err
}

func (r *CountryRepository) List(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	query := `SELECT country_id, name, visa_required, created_at FROM countries ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var country models.Country
		err := rows.Scan(
			&country.CountryID,
			&country.Name,
			&country.VisaRequired,
			&country.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}

	return countries, rows.Err()
}

func (r *CountryRepository) Update(ctx context.Context, country *models.Country) error {
	query := `UPDATE countries SET name = $1, visa_required = $2 WHERE country_id = $3`
	_, err := r.db.ExecContext(ctx, query, country.Name, country.VisaRequired, country.CountryID)
	return err
}

// CountCities возвращает число городов страны
func (r *CountryRepository) CountCities(ctx context.Context, countryID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities WHERE country_id = $1`, countryID).Scan(&count)
	return count, err
}

func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM countries WHERE country_id = $1`, id)
	return err
}
