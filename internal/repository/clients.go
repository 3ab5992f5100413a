package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type ClientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `client_id, first_name, last_name, name_latin, passport_number,
	       passport_expiry, birth_date, gender, phone, email, registration_date`

func scanClient(row interface{ Scan(...any) error }, client *models.Client) error {
	return row.Scan(
		&client.ClientID,
		&client.FirstName,
		&client.LastName,
		&client.NameLatin,
		&client.PassportNumber,
		&client.PassportExpiry,
		&client.BirthDate,
		&client.Gender,
		&client.Phone,
		&client.Email,
		&client.RegistrationDate,
	)
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (first_name, last_name, name_latin, passport_number,
		                     passport_expiry, birth_date, gender, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING client_id, registration_date`

	err := r.db.QueryRowContext(ctx, query,
		client.FirstName,
		client.LastName,
		client.NameLatin,
		client.PassportNumber,
		client.PassportExpiry,
		client.BirthDate,
		client.Gender,
		client.Phone,
		client.Email,
	).Scan(&client.ClientID, &client.RegistrationDate)

	return err
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1`

	err := scanClient(r.db.QueryRowContext(ctx, query, id), client)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return client, err
}

// GetByPassport ищет клиента по номеру паспорта, исключая excludeID (0 - без исключений)
func (r *ClientRepository) GetByPassport(ctx context.Context, passport string, excludeID int64) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE passport_number = $1 AND client_id <> $2`

	err := scanClient(r.db.QueryRowContext(ctx, query, passport, excludeID), client)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return client, err
}

// GetByEmail ищет клиента по email, исключая excludeID (0 - без исключений)
func (r *ClientRepository) GetByEmail(ctx context.Context, email string, excludeID int64) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE email = $1 AND client_id <> $2`

	err := scanClient(r.db.QueryRowContext(ctx, query, email, excludeID), client)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return client, err
}

// List возвращает клиентов, опционально отфильтрованных по имени/фамилии/паспорту
func (r *ClientRepository) List(ctx context.Context, filter string) ([]models.Client, error) {
	var clients []models.Client
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE $1 = '' OR first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR passport_number ILIKE '%' || $1 || '%'
		ORDER BY client_id`

	rows, err := r.db.QueryContext(ctx, query, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := scanClient(rows, &client); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET first_name = $1, last_name = $2, name_latin = $3, passport_number = $4,
		    passport_expiry = $5, birth_date = $6, gender = $7, phone = $8, email = $9
		WHERE client_id = $10`

	_, err := r.db.ExecContext(ctx, query,
		client.FirstName,
		client.LastName,
		client.NameLatin,
		client.PassportNumber,
		client.PassportExpiry,
		client.BirthDate,
		client.Gender,
		client.Phone,
		client.Email,
		client.ClientID,
	)

	return err
}

// ImportMany вставляет клиентов одной транзакцией: либо весь импорт, либо ничего
func (r *ClientRepository) ImportMany(ctx context.Context, clients []models.Client) error {
	return r.db.WithinTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO clients (first_name, last_name, name_latin, passport_number,
			                     passport_expiry, birth_date, gender, phone, email)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING client_id, registration_date`

		for i := range clients {
			client := &clients[i]
			err := tx.QueryRowContext(ctx, query,
				client.FirstName,
				client.LastName,
				client.NameLatin,
				client.PassportNumber,
				client.PassportExpiry,
				client.BirthDate,
				client.Gender,
				client.Phone,
				client.Email,
			).Scan(&client.ClientID, &client.RegistrationDate)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// CountBookings возвращает число бронирований клиента
func (r *ClientRepository) CountBookings(ctx context.Context, clientID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM bookings WHERE client_id = $1`
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(&count)
	return count, err
}

// Delete удаляет клиента. Каскад в схеме снимает его бронирования (вместе с
// платежами) и отзывы; прикладной запрет проверяется сервисным слоем.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE client_id = $1`, id)
	return err
}
