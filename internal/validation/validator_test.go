package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "travelagency/internal/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClientAgeSeventeenRejected(t *testing.T) {
	now := date(2026, time.August, 25)
	birth := date(2009, time.August, 26) // 17 лет, день рождения завтра

	err := ClientAge(birth, now)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestClientAgeExactlyEighteenAccepted(t *testing.T) {
	now := date(2026, time.August, 25)
	birth := date(2008, time.August, 25) // ровно 18 лет сегодня

	assert.NoError(t, ClientAge(birth, now))
}

func TestPassportExpiryRejected(t *testing.T) {
	now := date(2026, time.August, 25)

	err := PassportExpiry(date(2026, time.August, 24), now)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestPassportExpiryTodayAccepted(t *testing.T) {
	now := date(2026, time.August, 25)
	assert.NoError(t, PassportExpiry(date(2026, time.August, 25), now))
}

func TestDateRange(t *testing.T) {
	departure := date(2026, time.September, 1)

	assert.Error(t, DateRange(departure, departure))
	assert.Error(t, DateRange(departure, date(2026, time.August, 30)))
	assert.NoError(t, DateRange(departure, date(2026, time.September, 8)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-01", "departure_date")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.September, 1), parsed)

	_, err = ParseDate("01.09.2026", "departure_date")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestStructTags(t *testing.T) {
	type payload struct {
		Rating int `validate:"min=1,max=5"`
	}

	assert.NoError(t, Struct(payload{Rating: 5}))
	assert.Error(t, Struct(payload{Rating: 6}))
}
