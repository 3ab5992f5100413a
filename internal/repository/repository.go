package repository

import (
	"travelagency/internal/database"
)

type Repositories struct {
	Clients   *ClientRepository
	Countries *CountryRepository
	Cities    *CityRepository
	Hotels    *HotelRepository
	TourTypes *TourTypeRepository
	Tours     *TourRepository
	Bookings  *BookingRepository
	Reviews   *ReviewRepository
	Employees *EmployeeRepository
	Users     *UserRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Clients:   NewClientRepository(db),
		Countries: NewCountryRepository(db),
		Cities:    NewCityRepository(db),
		Hotels:    NewHotelRepository(db),
		TourTypes: NewTourTypeRepository(db),
		Tours:     NewTourRepository(db),
		Bookings:  NewBookingRepository(db),
		Reviews:   NewReviewRepository(db),
		Employees: NewEmployeeRepository(db),
		Users:     NewUserRepository(db),
	}
}
