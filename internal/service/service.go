package service

import (
	"travelagency/internal/messaging"
	"travelagency/internal/repository"
	"travelagency/internal/search"
)

type Services struct {
	Clients   *ClientService
	Catalog   *CatalogService
	Tours     *TourService
	Bookings  *BookingService
	Employees *EmployeeService
	Reviews   *ReviewService
	Users     *UserService
}

// Options - настройки доменных операций
type Options struct {
	// Режим удаления клиента: guard запрещает удаление при бронированиях,
	// cascade удаляет вместе с бронированиями и отзывами
	ClientDeleteCascade bool
}

func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, esClient *search.ElasticsearchClient, opts Options) *Services {
	return &Services{
		Clients:   NewClientService(repos.Clients, opts),
		Catalog:   NewCatalogService(repos.Countries, repos.Cities, repos.Hotels, repos.TourTypes),
		Tours:     NewTourService(repos.Tours, repos.TourTypes, repos.Hotels, esClient, natsClient),
		Bookings:  NewBookingService(repos.Bookings, repos.Clients, repos.Tours, repos.Employees, natsClient),
		Employees: NewEmployeeService(repos.Employees),
		Reviews:   NewReviewService(repos.Reviews, repos.Tours, repos.Clients),
		Users:     NewUserService(repos.Users, repos.Employees),
	}
}
