package service

import (
	"time"

	"travelagency/internal/models"
)

// ComputeTotal вычисляет полную стоимость бронирования тура на заданные даты.
//
// Наценка 1.2 за первую линию применяется к накопленной сумме, а не к вкладу
// конкретного отеля, поэтому результат зависит от порядка обхода отелей
// (репозиторий отдает их по hotel_id). Это унаследованное поведение, и оно
// сохранено ради совместимости расчетов с историческими данными.
func ComputeTotal(basePrice float64, hotels []models.TourHotel, departure, returnDate time.Time) float64 {
	total := basePrice

	for _, th := range hotels {
		total += float64(th.Stars) * 1000 * float64(th.Nights)
		if th.BeachLine {
			total *= 1.2
		}
	}

	days := returnDate.Sub(departure).Hours() / 24
	total *= days / 7

	return total
}
