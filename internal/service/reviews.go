package service

import (
	"context"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	tourRepo   *repository.TourRepository
	clientRepo *repository.ClientRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, tourRepo *repository.TourRepository, clientRepo *repository.ClientRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		tourRepo:   tourRepo,
		clientRepo: clientRepo,
	}
}

// Create создает отзыв; клиент оставляет не больше одного отзыва о туре
func (s *ReviewService) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	tour, err := s.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if tour == nil {
		return nil, apperrors.NotFound("tour %d not found", req.TourID)
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("client %d not found", req.ClientID)
	}

	existing, err := s.reviewRepo.GetByTourClient(ctx, req.TourID, req.ClientID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if existing != nil {
		return nil, apperrors.DuplicateKey("client %d already reviewed tour %d", req.ClientID, req.TourID)
	}

	review := &models.Review{
		TourID:   req.TourID,
		ClientID: req.ClientID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return review, nil
}

func (s *ReviewService) ListByTour(ctx context.Context, tourID int64) ([]models.Review, error) {
	reviews, err := s.reviewRepo.ListByTour(ctx, tourID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return reviews, nil
}

func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if review == nil {
		return apperrors.NotFound("review %d not found", id)
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}
