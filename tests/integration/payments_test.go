package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/service"
)

// Накопление платежей: частичная оплата статус не меняет, достижение полной
// стоимости переводит бронирование в "paid" вместе с is_paid в одной транзакции
func TestPaymentAccumulationMarksBookingPaid(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	booking := createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	LogTestStep(t, "Recording a partial payment")
	totalPaid, status, err := repos.Bookings.RecordPayment(ctx, &models.Payment{
		BookingID: booking.BookingID,
		Amount:    400,
		Method:    "card",
	})
	require.NoError(t, err)
	require.Equal(t, 400.0, totalPaid)
	require.Equal(t, models.BookingStatusConfirmed, status)

	partial, err := repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusConfirmed, partial.Status)
	require.False(t, partial.IsPaid)

	LogTestStep(t, "Recording the payment that reaches the total")
	totalPaid, status, err = repos.Bookings.RecordPayment(ctx, &models.Payment{
		BookingID: booking.BookingID,
		Amount:    600,
		Method:    "cash",
	})
	require.NoError(t, err)
	require.Equal(t, 1000.0, totalPaid)
	require.Equal(t, models.BookingStatusPaid, status)

	paid, err := repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusPaid, paid.Status)
	require.True(t, paid.IsPaid, "reaching the total must set is_paid")

	payments, err := repos.Bookings.GetPayments(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	LogTestResult(t, "Payments accumulated and the booking became paid")
}

func TestPaymentDuplicateTransactionIDRejected(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	booking := createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	txID := fmt.Sprintf("tx-%s", uniqueSuffix())
	_, _, err := repos.Bookings.RecordPayment(ctx, &models.Payment{
		BookingID:     booking.BookingID,
		Amount:        100,
		Method:        "card",
		TransactionID: &txID,
	})
	require.NoError(t, err)

	_, _, err = repos.Bookings.RecordPayment(ctx, &models.Payment{
		BookingID:     booking.BookingID,
		Amount:        100,
		Method:        "card",
		TransactionID: &txID,
	})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(apperrors.FromPostgres(err), apperrors.CodeDuplicateKey),
		"expected DUPLICATE_KEY, got %v", err)

	// отклоненный платеж не должен попасть в накопленную сумму
	payments, err := repos.Bookings.GetPayments(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	LogTestResult(t, "Duplicate transaction id rejected without a partial write")
}

// Правка статуса на "paid" через редактирование держит is_paid в согласии
// со статусом, как и путь регистрации платежей
func TestBookingUpdateStatusPaidSetsIsPaid(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewBookingService(repos.Bookings, repos.Clients, repos.Tours, repos.Employees, nil)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	booking := createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	LogTestStep(t, "Editing the booking status to paid")
	paidStatus := models.BookingStatusPaid
	updated, err := svc.Update(ctx, booking.BookingID, &models.UpdateBookingRequest{Status: &paidStatus})
	require.NoError(t, err)
	require.True(t, updated.IsPaid)

	stored, err := repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusPaid, stored.Status)
	require.True(t, stored.IsPaid, "edit path must keep is_paid in step with the status")

	LogTestStep(t, "Editing the booking status back to confirmed")
	confirmedStatus := models.BookingStatusConfirmed
	updated, err = svc.Update(ctx, booking.BookingID, &models.UpdateBookingRequest{Status: &confirmedStatus})
	require.NoError(t, err)
	require.False(t, updated.IsPaid)

	stored, err = repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.False(t, stored.IsPaid)
	LogTestResult(t, "is_paid follows the status on booking edits")
}

func TestBookingCancelFromConfirmedAndPaidOnly(t *testing.T) {
	repos := setupTestDB(t)
	svc := service.NewBookingService(repos.Bookings, repos.Clients, repos.Tours, repos.Employees, nil)
	ctx := context.Background()

	client := createTestClient(t, repos)
	employee := createTestEmployee(t, repos)
	catalog := createTestCatalog(t, repos)
	booking := createTestBooking(t, repos, client.ClientID, catalog.Tour.TourID, employee.EmployeeID, 1000)

	require.NoError(t, repos.Bookings.UpdateStatus(ctx, booking.BookingID, models.BookingStatusCompleted))
	err := svc.Cancel(ctx, booking.BookingID, "client request")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed), "expected VALIDATION_FAILED, got %v", err)

	require.NoError(t, repos.Bookings.UpdateStatus(ctx, booking.BookingID, models.BookingStatusConfirmed))
	require.NoError(t, svc.Cancel(ctx, booking.BookingID, "client request"))

	stored, err := repos.Bookings.GetByID(ctx, booking.BookingID)
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCancelled, stored.Status)
}
