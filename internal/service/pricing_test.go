package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"travelagency/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotalSingleBeachHotel(t *testing.T) {
	hotels := []models.TourHotel{
		{HotelID: 1, Stars: 3, Nights: 2, BeachLine: true},
	}

	// (100 + 3*1000*2) * 1.2 * (7/7) = 7320
	total := ComputeTotal(100, hotels, date(2026, time.June, 1), date(2026, time.June, 8))
	assert.InDelta(t, 7320.00, total, 0.001)
}

func TestComputeTotalNoHotels(t *testing.T) {
	total := ComputeTotal(700, nil, date(2026, time.June, 1), date(2026, time.June, 8))
	assert.InDelta(t, 700, total, 0.001)
}

func TestComputeTotalScalesByDays(t *testing.T) {
	total := ComputeTotal(700, nil, date(2026, time.June, 1), date(2026, time.June, 15))
	assert.InDelta(t, 1400, total, 0.001)
}

// Наценка за первую линию умножает накопленную сумму, поэтому порядок
// отелей меняет итог; закреплено тестом как совместимое поведение.
func TestComputeTotalOrderDependent(t *testing.T) {
	beachFirst := []models.TourHotel{
		{HotelID: 1, Stars: 2, Nights: 1, BeachLine: true},
		{HotelID: 2, Stars: 4, Nights: 1, BeachLine: false},
	}
	beachLast := []models.TourHotel{
		{HotelID: 1, Stars: 4, Nights: 1, BeachLine: false},
		{HotelID: 2, Stars: 2, Nights: 1, BeachLine: true},
	}

	departure := date(2026, time.June, 1)
	returnDate := date(2026, time.June, 8)

	// (100 + 2000)*1.2 + 4000 = 6520
	assert.InDelta(t, 6520, ComputeTotal(100, beachFirst, departure, returnDate), 0.001)
	// (100 + 4000 + 2000)*1.2 = 7320
	assert.InDelta(t, 7320, ComputeTotal(100, beachLast, departure, returnDate), 0.001)
}

func TestPaymentCompletes(t *testing.T) {
	assert.False(t, models.PaymentCompletes(50, 100))
	assert.True(t, models.PaymentCompletes(100, 100))
	assert.True(t, models.PaymentCompletes(150, 100))
}
