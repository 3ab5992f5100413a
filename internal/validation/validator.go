package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "travelagency/internal/errors"
)

const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Struct - валидация структуры по validate-тегам
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return apperrors.ValidationFailed("%s", err.Error())
	}
	return nil
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.ValidationFailed("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// ClientAge проверяет, что клиенту исполнилось 18 лет.
// День рождения ровно 18 лет назад считается достаточным.
func ClientAge(birthDate, now time.Time) error {
	eighteenth := birthDate.AddDate(18, 0, 0)
	if eighteenth.After(now) {
		return apperrors.ValidationFailed("client must be at least 18 years old")
	}
	return nil
}

// PassportExpiry проверяет, что паспорт не просрочен
func PassportExpiry(expiry, now time.Time) error {
	today := now.Truncate(24 * time.Hour)
	if expiry.Before(today) {
		return apperrors.ValidationFailed("passport has expired")
	}
	return nil
}

// DateRange проверяет, что дата возврата позже даты отправления
func DateRange(departure, returnDate time.Time) error {
	if !returnDate.After(departure) {
		return apperrors.ValidationFailed("return date must be after departure date")
	}
	return nil
}
