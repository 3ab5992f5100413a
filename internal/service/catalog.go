package service

import (
	"context"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

// CatalogService ведет справочники: страны, города, отели, типы туров.
// Политика удаления единая: запись с зависимыми не удаляется.
type CatalogService struct {
	countryRepo  *repository.CountryRepository
	cityRepo     *repository.CityRepository
	hotelRepo    *repository.HotelRepository
	tourTypeRepo *repository.TourTypeRepository
}

func NewCatalogService(countryRepo *repository.CountryRepository, cityRepo *repository.CityRepository, hotelRepo *repository.HotelRepository, tourTypeRepo *repository.TourTypeRepository) *CatalogService {
	return &CatalogService{
		countryRepo:  countryRepo,
		cityRepo:     cityRepo,
		hotelRepo:    hotelRepo,
		tourTypeRepo: tourTypeRepo,
	}
}

// Countries

func (s *CatalogService) CreateCountry(ctx context.Context, req *models.CreateCountryRequest) (*models.Country, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	country := &models.Country{
		Name:         req.Name,
		VisaRequired: req.VisaRequired,
	}
	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return country, nil
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]models.Country, error) {
	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return countries, nil
}

func (s *CatalogService) DeleteCountry(ctx context.Context, id int64) error {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if country == nil {
		return apperrors.NotFound("country %d not found", id)
	}

	count, err := s.countryRepo.CountCities(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("country %d has %d cities", id, count)
	}

	if err := s.countryRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}

// Cities

func (s *CatalogService) CreateCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	country, err := s.countryRepo.GetByID(ctx, req.CountryID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if country == nil {
		return nil, apperrors.NotFound("country %d not found", req.CountryID)
	}

	city := &models.City{
		CountryID: req.CountryID,
		Name:      req.Name,
		IsPopular: req.IsPopular,
	}
	// (country, name) уникальна; нарушение ловится как DuplicateKey
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return city, nil
}

func (s *CatalogService) ListCities(ctx context.Context, countryID int64) ([]models.City, error) {
	cities, err := s.cityRepo.List(ctx, countryID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return cities, nil
}

func (s *CatalogService) DeleteCity(ctx context.Context, id int64) error {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if city == nil {
		return apperrors.NotFound("city %d not found", id)
	}

	count, err := s.cityRepo.CountHotels(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("city %d has %d hotels", id, count)
	}

	if err := s.cityRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}

// Hotels

func (s *CatalogService) CreateHotel(ctx context.Context, req *models.CreateHotelRequest) (*models.Hotel, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	city, err := s.cityRepo.GetByID(ctx, req.CityID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if city == nil {
		return nil, apperrors.NotFound("city %d not found", req.CityID)
	}

	hotel := &models.Hotel{
		CityID:    req.CityID,
		Name:      req.Name,
		Stars:     req.Stars,
		BeachLine: req.BeachLine,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return hotel, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, cityID int64) ([]models.Hotel, error) {
	hotels, err := s.hotelRepo.List(ctx, cityID)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return hotels, nil
}

func (s *CatalogService) DeleteHotel(ctx context.Context, id int64) error {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if hotel == nil {
		return apperrors.NotFound("hotel %d not found", id)
	}

	count, err := s.hotelRepo.CountTourLinks(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("hotel %d is used by %d tours", id, count)
	}

	if err := s.hotelRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}

// Tour types

func (s *CatalogService) CreateTourType(ctx context.Context, req *models.CreateTourTypeRequest) (*models.TourType, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	tourType := &models.TourType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.tourTypeRepo.Create(ctx, tourType); err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return tourType, nil
}

func (s *CatalogService) ListTourTypes(ctx context.Context) ([]models.TourType, error) {
	types, err := s.tourTypeRepo.List(ctx)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return types, nil
}

func (s *CatalogService) DeleteTourType(ctx context.Context, id int64) error {
	tourType, err := s.tourTypeRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if tourType == nil {
		return apperrors.NotFound("tour type %d not found", id)
	}

	count, err := s.tourTypeRepo.CountTours(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("tour type %d has %d tours", id, count)
	}

	if err := s.tourTypeRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}
