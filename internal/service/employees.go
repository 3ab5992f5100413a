package service

import (
	"context"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

type EmployeeService struct {
	employeeRepo *repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hireDate, err := validation.ParseDate(req.HireDate, "hire_date")
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := &models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		HireDate:  hireDate,
		Salary:    req.Salary,
		IsActive:  isActive,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, req *models.UpdateEmployeeRequest) (*models.Employee, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if employee == nil {
		return nil, apperrors.NotFound("employee %d not found", id)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return employee, nil
}

// Delete удаляет сотрудника; сотрудник с оформленными бронированиями не удаляется
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if employee == nil {
		return apperrors.NotFound("employee %d not found", id)
	}

	count, err := s.employeeRepo.CountBookings(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if count > 0 {
		return apperrors.HasDependents("employee %d has %d bookings", id, count)
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}
	return nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if employee == nil {
		return nil, apperrors.NotFound("employee %d not found", id)
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return employees, nil
}
