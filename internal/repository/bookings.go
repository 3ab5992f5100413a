package repository

import (
	"context"
	"database/sql"
	"time"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `booking_id, client_id, tour_id, employee_id, booking_date,
	       departure_date, return_date, total_price, status, is_paid, has_prepayment`

func scanBooking(row interface{ Scan(...any) error }, booking *models.Booking) error {
	return row.Scan(
		&booking.BookingID,
		&booking.ClientID,
		&booking.TourID,
		&booking.EmployeeID,
		&booking.BookingDate,
		&booking.DepartureDate,
		&booking.ReturnDate,
		&booking.TotalPrice,
		&booking.Status,
		&booking.IsPaid,
		&booking.HasPrepayment,
	)
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (client_id, tour_id, employee_id, departure_date,
		                      return_date, total_price, status, has_prepayment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING booking_id, booking_date`

	return r.db.QueryRowContext(ctx, query,
		booking.ClientID,
		booking.TourID,
		booking.EmployeeID,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.TotalPrice,
		booking.Status,
		booking.HasPrepayment,
	).Scan(&booking.BookingID, &booking.BookingDate)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	err := scanBooking(r.db.QueryRowContext(ctx, query, id), booking)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return booking, err
}

// List возвращает строки бронирований с именем клиента и названием тура
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

// ListJoined возвращает отчетные строки: клиент, тур, даты, цена, статус
func (r *BookingRepository) ListJoined(ctx context.Context) ([]models.BookingListItem, error) {
	var items []models.BookingListItem
	query := `
		SELECT b.booking_id, c.first_name || ' ' || c.last_name AS client_name,
		       t.title, b.booking_date, b.departure_date, b.return_date,
		       b.total_price, b.status
		FROM bookings b
		JOIN clients c ON c.client_id = b.client_id
		JOIN tours t ON t.tour_id = b.tour_id
		ORDER BY b.booking_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.BookingListItem
		var bookingDate, departureDate, returnDate time.Time
		err := rows.Scan(
			&item.BookingID,
			&item.ClientName,
			&item.TourTitle,
			&bookingDate,
			&departureDate,
			&returnDate,
			&item.TotalPrice,
			&item.Status,
		)
		if err != nil {
			return nil, err
		}
		item.BookingDate = bookingDate.Format("2006-01-02")
		item.DepartureDate = departureDate.Format("2006-01-02")
		item.ReturnDate = returnDate.Format("2006-01-02")
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET departure_date = $1, return_date = $2, total_price = $3,
		    status = $4, is_paid = $5, has_prepayment = $6
		WHERE booking_id = $7`

	_, err := r.db.ExecContext(ctx, query,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.TotalPrice,
		booking.Status,
		booking.IsPaid,
		booking.HasPrepayment,
		booking.BookingID,
	)

	return err
}

func (r *BookingRepository) GetPayments(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	var payments []models.Payment
	query := `
		SELECT payment_id, booking_id, amount, payment_date, method, transaction_id
		FROM payments
		WHERE booking_id = $1
		ORDER BY payment_date`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.PaymentID,
			&payment.BookingID,
			&payment.Amount,
			&payment.PaymentDate,
			&payment.Method,
			&payment.TransactionID,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// RecordPayment вставляет платеж и в той же транзакции пересчитывает сумму
// оплат; при достижении полной стоимости бронирование переводится в "paid".
// Возвращает накопленную сумму и статус после операции.
func (r *BookingRepository) RecordPayment(ctx context.Context, payment *models.Payment) (float64, string, error) {
	var totalPaid float64
	var status string

	err := r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		insertQuery := `
			INSERT INTO payments (booking_id, amount, method, transaction_id)
			VALUES ($1, $2, $3, $4)
			RETURNING payment_id, payment_date`

		err := tx.QueryRowContext(ctx, insertQuery,
			payment.BookingID,
			payment.Amount,
			payment.Method,
			payment.TransactionID,
		).Scan(&payment.PaymentID, &payment.PaymentDate)
		if err != nil {
			return err
		}

		sumQuery := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE booking_id = $1`
		if err := tx.QueryRowContext(ctx, sumQuery, payment.BookingID).Scan(&totalPaid); err != nil {
			return err
		}

		var totalPrice float64
		stateQuery := `SELECT total_price, status FROM bookings WHERE booking_id = $1 FOR UPDATE`
		if err := tx.QueryRowContext(ctx, stateQuery, payment.BookingID).Scan(&totalPrice, &status); err != nil {
			return err
		}

		if models.PaymentCompletes(totalPaid, totalPrice) {
			status = models.BookingStatusPaid
			updateQuery := `UPDATE bookings SET status = $1, is_paid = TRUE WHERE booking_id = $2`
			if _, err := tx.ExecContext(ctx, updateQuery, status, payment.BookingID); err != nil {
				return err
			}
		}

		return nil
	})

	return totalPaid, status, err
}

// GetPaidPastReturn возвращает оплаченные бронирования с датой возврата раньше asOf
func (r *BookingRepository) GetPaidPastReturn(ctx context.Context, asOf time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE status = $1 AND return_date < $2`

	rows, err := r.db.QueryContext(ctx, query, models.BookingStatusPaid, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE booking_id = $2`, status, id)
	return err
}

// Delete удаляет бронирование; платежи снимает каскад в схеме
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	return err
}
