package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/service"
)

// Справочники удаляются только снизу вверх: сначала зависимые записи,
// потом родительские.

func TestCountryDeleteGuardWithCities(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes)
	ctx := context.Background()

	catalog := createTestCatalog(t, repos)

	LogTestStep(t, "Deleting country that still has a city")
	err := svc.DeleteCountry(ctx, catalog.Country.CountryID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)
	LogTestResult(t, "Country with cities is protected")
}

func TestCityDeleteGuardWithHotels(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes)
	ctx := context.Background()

	catalog := createTestCatalog(t, repos)

	err := svc.DeleteCity(ctx, catalog.City.CityID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)
	LogTestResult(t, "City with hotels is protected")
}

func TestHotelDeleteGuardWhenUsedByTour(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes)
	ctx := context.Background()

	catalog := createTestCatalog(t, repos)

	err := svc.DeleteHotel(ctx, catalog.Hotel.HotelID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)
	LogTestResult(t, "Hotel linked to a tour is protected")
}

func TestTourTypeDeleteGuardWithTours(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes)
	ctx := context.Background()

	catalog := createTestCatalog(t, repos)

	err := svc.DeleteTourType(ctx, catalog.TourType.TypeID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)
	LogTestResult(t, "Tour type with tours is protected")
}

func TestTourDeleteGuardWithBookings(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewTourService(repos.Tours, repos.TourTypes, repos.Hotels, nil, nil)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	err := svc.Delete(ctx, catalog.Tour.TourID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)

	kept, err := repos.Tours.GetByID(ctx, catalog.Tour.TourID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	LogTestResult(t, "Tour with bookings is protected")
}

func TestEmployeeDeleteGuardWithBookings(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewEmployeeService(repos.Employees)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	err := svc.Delete(ctx, employee.EmployeeID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)
	LogTestResult(t, "Employee with bookings is protected")
}

// Без зависимых записей справочник удаляется снизу вверх целиком
func TestCatalogDeleteBottomUp(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes)
	ctx := context.Background()

	catalog := createTestCatalog(t, repos)

	// Тур держит отель и тип; удаляем его напрямую через репозиторий,
	// чтобы не трогать поисковый индекс
	require.NoError(t, repos.Tours.Delete(ctx, catalog.Tour.TourID))

	require.NoError(t, svc.DeleteHotel(ctx, catalog.Hotel.HotelID))
	require.NoError(t, svc.DeleteTourType(ctx, catalog.TourType.TypeID))
	require.NoError(t, svc.DeleteCity(ctx, catalog.City.CityID))
	require.NoError(t, svc.DeleteCountry(ctx, catalog.Country.CountryID))
	LogTestResult(t, "Catalog removed bottom-up once dependents were gone")
}
