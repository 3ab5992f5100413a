package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/service"
)

func TestClientDuplicatePassportRejected(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{})
	ctx := context.Background()

	LogTestStep(t, "Creating client")
	req := newClientRequest(uniqueSuffix())
	first, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotZero(t, first.ClientID)

	LogTestStep(t, "Creating second client with the same passport")
	dup := newClientRequest(uniqueSuffix())
	dup.PassportNumber = req.PassportNumber
	_, err = svc.Create(ctx, dup)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateKey), "expected DUPLICATE_KEY, got %v", err)
	LogTestResult(t, "Duplicate passport rejected")
}

func TestClientDuplicateEmailRejected(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{})
	ctx := context.Background()

	req := newClientRequest(uniqueSuffix())
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	dup := newClientRequest(uniqueSuffix())
	dup.Email = req.Email
	_, err = svc.Create(ctx, dup)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateKey), "expected DUPLICATE_KEY, got %v", err)
	LogTestResult(t, "Duplicate email rejected")
}

func TestClientUpdateToTakenPassportRejected(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{})
	ctx := context.Background()

	first := createTestClient(t, repos)
	second := createTestClient(t, repos)

	_, err := svc.Update(ctx, second.ClientID, &models.UpdateClientRequest{
		PassportNumber: &first.PassportNumber,
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateKey), "expected DUPLICATE_KEY, got %v", err)

	// свой собственный паспорт при правке конфликтом не считается
	_, err = svc.Update(ctx, second.ClientID, &models.UpdateClientRequest{
		PassportNumber: &second.PassportNumber,
	})
	require.NoError(t, err)
	LogTestResult(t, "Passport uniqueness checked with self excluded")
}

func TestClientDeleteGuardWithBookings(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{ClientDeleteCascade: false})
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	LogTestStep(t, "Deleting client with a booking in guard mode")
	err := svc.Delete(ctx, client.ClientID)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeHasDependents), "expected HAS_DEPENDENTS, got %v", err)

	kept, err := repos.Clients.GetByID(ctx, client.ClientID)
	require.NoError(t, err)
	require.NotNil(t, kept, "guard mode must keep the client")
	LogTestResult(t, "Guard mode refused deletion and kept the client")
}

func TestClientDeleteCascadeRemovesDependents(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{ClientDeleteCascade: true})
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	booking := createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	_, _, err := repos.Bookings.RecordPayment(ctx, &models.Payment{
		BookingID: booking.BookingID,
		Amount:    300,
		Method:    "card",
	})
	require.NoError(t, err)

	review := &models.Review{TourID: catalog.Tour.TourID, ClientID: client.ClientID, Rating: 5}
	require.NoError(t, repos.Reviews.Create(ctx, review))

	LogTestStep(t, "Deleting client with a booking in cascade mode")
	require.NoError(t, svc.Delete(ctx, client.ClientID))

	gone, err := repos.Clients.GetByID(ctx, client.ClientID)
	require.NoError(t, err)
	require.Nil(t, gone)

	goneBooking, err := repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Nil(t, goneBooking, "cascade must remove the client's bookings")

	payments, err := repos.Bookings.GetPayments(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Empty(t, payments, "cascade must remove payments with the booking")

	goneReview, err := repos.Reviews.GetByID(ctx, review.ReviewID)
	require.NoError(t, err)
	require.Nil(t, goneReview, "cascade must remove the client's reviews")
	LogTestResult(t, "Cascade removed the client with bookings, payments and reviews")
}

func TestClientDeleteWithoutBookings(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewClientService(repos.Clients, service.Options{ClientDeleteCascade: false})
	ctx := context.Background()

	client := createTestClient(t, repos)
	require.NoError(t, svc.Delete(ctx, client.ClientID))

	gone, err := repos.Clients.GetByID(ctx, client.ClientID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
