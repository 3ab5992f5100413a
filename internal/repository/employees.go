package repository

import (
	"context"
	"database/sql"

	"travelagency/internal/database"
	"travelagency/internal/models"
)

type EmployeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, position, hire_date, salary, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id`

	return r.db.QueryRowContext(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.HireDate,
		employee.Salary,
		employee.IsActive,
	).Scan(&employee.EmployeeID)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `SELECT employee_id, first_name, last_name, position, hire_date, salary, is_active
		FROM employees WHERE employee_id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.EmployeeID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Position,
		&employee.HireDate,
		&employee.Salary,
		&employee.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return employee, err
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	query := `SELECT employee_id, first_name, last_name, position, hire_date, salary, is_active
		FROM employees ORDER BY last_name, first_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var employee models.Employee
		err := rows.Scan(
			&employee.EmployeeID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Position,
			&employee.HireDate,
			&employee.Salary,
			&employee.IsActive,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, position = $3, salary = $4, is_active = $5
		WHERE employee_id = $6`

	_, err := r.db.ExecContext(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.Salary,
		employee.IsActive,
		employee.EmployeeID,
	)

	return err
}

// CountBookings возвращает число бронирований, оформленных сотрудником
func (r *EmployeeRepository) CountBookings(ctx context.Context, employeeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE employee_id = $1`, employeeID).Scan(&count)
	return count, err
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	return err
}
