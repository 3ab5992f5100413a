package service

import (
	"context"
	"fmt"
	"time"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/logger"
	"travelagency/internal/messaging"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/search"
	"travelagency/internal/validation"
)

// TourService отвечает за туры и их поисковый индекс. База данных является
// источником истины; индексация и события публикуются без отката операции.
type TourService struct {
	tourRepo     *repository.TourRepository
	tourTypeRepo *repository.TourTypeRepository
	hotelRepo    *repository.HotelRepository
	esClient     *search.ElasticsearchClient
	natsClient   *messaging.NATSClient
}

func NewTourService(tourRepo *repository.TourRepository, tourTypeRepo *repository.TourTypeRepository, hotelRepo *repository.HotelRepository, esClient *search.ElasticsearchClient, natsClient *messaging.NATSClient) *TourService {
	return &TourService{
		tourRepo:     tourRepo,
		tourTypeRepo: tourTypeRepo,
		hotelRepo:    hotelRepo,
		esClient:     esClient,
		natsClient:   natsClient,
	}
}

func (s *TourService) Create(ctx context.Context, req *models.CreateTourRequest) (*models.Tour, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	tourType, err := s.tourTypeRepo.GetByID(ctx, req.TypeID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if tourType == nil {
		return nil, apperrors.NotFound("tour type %d not found", req.TypeID)
	}

	hotels, err := s.resolveHotels(ctx, req.Hotels)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tour := &models.Tour{
		TypeID:      req.TypeID,
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		IsActive:    isActive,
		Hotels:      hotels,
	}

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	s.indexTour(ctx, tour)
	s.publishTourEvent(ctx, models.EventTourCreated, tour.TourID)

	return tour, nil
}

func (s *TourService) Update(ctx context.Context, id int64, req *models.UpdateTourRequest) (*models.Tour, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if tour == nil {
		return nil, apperrors.NotFound("tour %d not found", id)
	}

	if req.TypeID != nil {
		tourType, err := s.tourTypeRepo.GetByID(ctx, *req.TypeID)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if tourType == nil {
			return nil, apperrors.NotFound("tour type %d not found", *req.TypeID)
		}
		tour.TypeID = *req.TypeID
	}
	if req.Title != nil {
		tour.Title = *req.Title
	}
	if req.Description != nil {
		tour.Description = req.Description
	}
	if req.BasePrice != nil {
		tour.BasePrice = *req.BasePrice
	}
	if req.IsActive != nil {
		tour.IsActive = *req.IsActive
	}

	// nil - отели не трогаем, пустой список - снимаем все связи
	replaceHotels := req.Hotels != nil
	if replaceHotels {
		hotels, err := s.resolveHotels(ctx, req.Hotels)
		if err != nil {
			return nil, err
		}
		tour.Hotels = hotels
	}

	if err := s.tourRepo.Update(ctx, tour, replaceHotels); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	s.indexTour(ctx, tour)
	s.publishTourEvent(ctx, models.EventTourUpdated, tour.TourID)

	return tour, nil
}

// Delete удаляет тур; тур с бронированиями не удаляется
func (s *TourService) Delete(ctx context.Context, id int64) error {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if tour == nil {
		return apperrors.NotFound("tour %d not found", id)
	}

	count, err := s.tourRepo.CountBookings(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("tour %d has %d bookings", id, count)
	}

	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}

	if err := s.esClient.DeleteTour(ctx, id); err != nil {
		logger.WithContext(ctx).Error("Failed to remove tour from search index",
			"error", err,
			"tour_id", id)
	}
	s.publishTourEvent(ctx, models.EventTourDeleted, id)

	return nil
}

func (s *TourService) Get(ctx context.Context, id int64) (*models.Tour, error) {
	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if tour == nil {
		return nil, apperrors.NotFound("tour %d not found", id)
	}
	return tour, nil
}

func (s *TourService) List(ctx context.Context, onlyActive bool) ([]models.Tour, error) {
	tours, err := s.tourRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return tours, nil
}

// Search ищет туры через поисковый индекс
func (s *TourService) Search(ctx context.Context, req *models.SearchToursRequest, page, pageSize int) ([]search.TourDocument, error) {
	docs, err := s.esClient.SearchTours(ctx, req.Query, req.PriceMin, req.PriceMax, req.OnlyActive, page, pageSize)
	if err != nil {
		logger.WithContext(ctx).Error("Tour search failed", "error", err, "query", req.Query)
		return nil, apperrors.StorageUnavailable(fmt.Errorf("tour search is unavailable: %w", err))
	}
	return docs, nil
}

func (s *TourService) resolveHotels(ctx context.Context, reqs []models.TourHotelRequest) ([]models.TourHotel, error) {
	hotels := make([]models.TourHotel, 0, len(reqs))
	for _, hr := range reqs {
		hotel, err := s.hotelRepo.GetByID(ctx, hr.HotelID)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if hotel == nil {
			return nil, apperrors.NotFound("hotel %d not found", hr.HotelID)
		}
		hotels = append(hotels, models.TourHotel{
			HotelID:   hr.HotelID,
			Nights:    hr.Nights,
			Stars:     hotel.Stars,
			BeachLine: hotel.BeachLine,
			HotelName: hotel.Name,
		})
	}
	return hotels, nil
}

func (s *TourService) indexTour(ctx context.Context, tour *models.Tour) {
	if err := s.esClient.IndexTour(ctx, tourDocument(tour)); err != nil {
		logger.WithContext(ctx).Error("Failed to index tour",
			"error", err,
			"tour_id", tour.TourID)
	}
}

func (s *TourService) publishTourEvent(ctx context.Context, subject string, tourID int64) {
	event := models.TourChangedEvent{
		TourID:    tourID,
		Timestamp: time.Now(),
	}
	if err := s.natsClient.Publish(subject, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish tour event",
			"error", err,
			"tour_id", tourID,
			"event_type", subject)
	}
}

func tourDocument(tour *models.Tour) *search.TourDocument {
	description := ""
	if tour.Description != nil {
		description = *tour.Description
	}
	return &search.TourDocument{
		ID:          tour.TourID,
		TypeID:      tour.TypeID,
		Title:       tour.Title,
		Description: description,
		BasePrice:   tour.BasePrice,
		IsActive:    tour.IsActive,
		CreatedAt:   tour.CreatedAt,
	}
}
