package service

import (
	"context"
	"time"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/repository"
	"travelagency/internal/validation"
)

type ClientService struct {
	clientRepo *repository.ClientRepository
	opts       Options
}

func NewClientService(clientRepo *repository.ClientRepository, opts Options) *ClientService {
	return &ClientService{clientRepo: clientRepo, opts: opts}
}

func (s *ClientService) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	birthDate, err := validation.ParseDate(req.BirthDate, "birth_date")
	if err != nil {
		return nil, err
	}
	passportExpiry, err := validation.ParseDate(req.PassportExpiry, "passport_expiry")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := validation.ClientAge(birthDate, now); err != nil {
		return nil, err
	}
	if err := validation.PassportExpiry(passportExpiry, now); err != nil {
		return nil, err
	}

	// Проверка на существующий паспорт
	existing, err := s.clientRepo.GetByPassport(ctx, req.PassportNumber, 0)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if existing != nil {
		return nil, apperrors.DuplicateKey("client with passport number %s already exists", req.PassportNumber)
	}

	// Проверка на существующий email
	if req.Email != nil && *req.Email != "" {
		existing, err := s.clientRepo.GetByEmail(ctx, *req.Email, 0)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if existing != nil {
			return nil, apperrors.DuplicateKey("client with email %s already exists", *req.Email)
		}
	}

	client := &models.Client{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		NameLatin:      req.NameLatin,
		PassportNumber: req.PassportNumber,
		PassportExpiry: passportExpiry,
		BirthDate:      birthDate,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("client %d not found", id)
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.NameLatin != nil {
		client.NameLatin = req.NameLatin
	}
	if req.Gender != nil {
		client.Gender = *req.Gender
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		birthDate, err := validation.ParseDate(*req.BirthDate, "birth_date")
		if err != nil {
			return nil, err
		}
		if err := validation.ClientAge(birthDate, time.Now()); err != nil {
			return nil, err
		}
		client.BirthDate = birthDate
	}
	if req.PassportExpiry != nil {
		passportExpiry, err := validation.ParseDate(*req.PassportExpiry, "passport_expiry")
		if err != nil {
			return nil, err
		}
		if err := validation.PassportExpiry(passportExpiry, time.Now()); err != nil {
			return nil, err
		}
		client.PassportExpiry = passportExpiry
	}

	// Новый паспорт/email не должны совпадать с данными другого клиента
	if req.PassportNumber != nil {
		existing, err := s.clientRepo.GetByPassport(ctx, *req.PassportNumber, id)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if existing != nil {
			return nil, apperrors.DuplicateKey("client with passport number %s already exists", *req.PassportNumber)
		}
		client.PassportNumber = *req.PassportNumber
	}
	if req.Email != nil && *req.Email != "" {
		existing, err := s.clientRepo.GetByEmail(ctx, *req.Email, id)
		if err != nil {
			return nil, apperrors.FromPostgres(err)
		}
		if existing != nil {
			return nil, apperrors.DuplicateKey("client with email %s already exists", *req.Email)
		}
		client.Email = req.Email
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, apperrors.FromPostgres(err)
	}

	return client, nil
}

// Delete удаляет клиента. В режиме guard удаление запрещено, пока у клиента
// есть бронирования; в режиме cascade бронирования, платежи и отзывы клиента
// удаляются вместе с ним. Отзывы снимаются в обоих режимах.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.FromPostgres(err)
	}
	if client == nil {
		return apperrors.NotFound("client %d not found", id)
	}

	if !s.opts.ClientDeleteCascade {
		count, err := s.clientRepo.CountBookings(ctx, id)
		if err != nil {
			return apperrors.FromPostgres(err)
		}
		if count > 0 {
			return apperrors.HasDependents("client %d has %d bookings", id, count)
		}
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return apperrors.FromPostgres(err)
	}

	return nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	if client == nil {
		return nil, apperrors.NotFound("client %d not found", id)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, filter string) ([]models.Client, error) {
	clients, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.FromPostgres(err)
	}
	return clients, nil
}
