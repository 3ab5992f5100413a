package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, username, password_hash, role, employee_id, is_active, created_at
		FROM users
		WHERE user_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.EmployeeID,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, username, password_hash, role, employee_id, is_active, created_at
		FROM users
		WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.EmployeeID,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, employee_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at`

	return r.db.QueryRowContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.EmployeeID,
		user.IsActive,
	).Scan(&user.UserID, &user.CreatedAt)
}
