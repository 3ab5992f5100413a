package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

// UserService ведет учетные записи. Пароли хранятся только как bcrypt-хеши.
type UserService struct {
	userRepo     *repository.UserRepository
	employeeRepo *repository.EmployeeRepository
}

func NewUserService(userRepo *repository.UserRepository, employeeRepo *repository.EmployeeRepository) *UserService {
	return &UserService{userRepo: userRepo, employeeRepo: employeeRepo}
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if existing != nil {
		return nil, apperrors.DuplicateKey("user %s already exists", req.Username)
	}

	if req.EmployeeID != nil {
		employee, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if employee == nil {
			return nil, apperrors.NotFound("employee %d not found", *req.EmployeeID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.StorageFault(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		EmployeeID:   req.EmployeeID,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return user, nil
}

// Authenticate проверяет пару логин/пароль. Неизвестный логин, неверный пароль
// и выключенная учетная запись неразличимы для вызывающего.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return user, nil
}
