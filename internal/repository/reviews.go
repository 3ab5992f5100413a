package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type ReviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (tour_id, client_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING review_id, review_date`

	return r.db.QueryRowContext(ctx, query,
		review.TourID,
		review.ClientID,
		review.Rating,
		review.Comment,
	).Scan(&review.ReviewID, &review.ReviewDate)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	review := &models.Review{}
	query := `SELECT review_id, tour_id, client_id, rating, comment, review_date
		FROM reviews WHERE review_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ReviewID,
		&review.TourID,
		&review.ClientID,
		&review.Rating,
		&review.Comment,
		&review.ReviewDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return review, err
}

// GetByTourClient ищет отзыв клиента о туре; пара (tour, client) уникальна
func (r *ReviewRepository) GetByTourClient(ctx context.Context, tourID, clientID int64) (*models.Review, error) {
	review := &models.Review{}
	query := `SELECT review_id, tour_id, client_id, rating, comment, review_date
		FROM reviews WHERE tour_id = $1 AND client_id = $2`

	err := r.db.QueryRowContext(ctx, query, tourID, clientID).Scan(
		&review.ReviewID,
		&review.TourID,
		&review.ClientID,
		&review.Rating,
		&review.Comment,
		&review.ReviewDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return review, err
}

// ListByTour возвращает отзывы о туре (tourID = 0 - все)
func (r *ReviewRepository) ListByTour(ctx context.Context, tourID int64) ([]models.Review, error) {
	var reviews []models.Review
	query := `SELECT review_id, tour_id, client_id, rating, comment, review_date
		FROM reviews
		WHERE $1 = 0 OR tour_id = $1
		ORDER BY review_date DESC`

	rows, err := r.db.QueryContext(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ReviewID,
			&review.TourID,
			&review.ClientID,
			&review.Rating,
			&review.Comment,
			&review.ReviewDate,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = $1`, id)
	return err
}
