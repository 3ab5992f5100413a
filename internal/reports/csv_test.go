package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
)

func strPtr(s string) *string { return &s }

func TestWriteClientsCSV(t *testing.T) {
	clients := []models.Client{
		{
			ClientID:       1,
			FirstName:      "Иван",
			LastName:       "Петров",
			NameLatin:      strPtr("IVAN PETROV"),
			PassportNumber: "7512345678",
			PassportExpiry: time.Date(2030, time.May, 20, 0, 0, 0, 0, time.UTC),
			BirthDate:      time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			Gender:         "male",
			Phone:          "+79001234567",
			Email:          strPtr("ivan@example.com"),
		},
		{
			ClientID:       2,
			FirstName:      "Анна",
			LastName:       "Сидорова",
			PassportNumber: "7598765432",
			PassportExpiry: time.Date(2029, time.January, 1, 0, 0, 0, 0, time.UTC),
			BirthDate:      time.Date(1985, time.December, 31, 0, 0, 0, 0, time.UTC),
			Gender:         "female",
			Phone:          "+79007654321",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClientsCSV(&buf, clients))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "client_id,first_name,last_name,email,phone,passport_number,passport_expiry,name_latin,birth_date,gender", lines[0])
	assert.Equal(t, "1,Иван,Петров,ivan@example.com,+79001234567,7512345678,2030-05-20,IVAN PETROV,1990-03-15,male", lines[1])
	// Необязательные поля выгружаются пустыми
	assert.Equal(t, "2,Анна,Сидорова,,+79007654321,7598765432,2029-01-01,,1985-12-31,female", lines[2])
}

func TestParseClientsCSVRoundTrip(t *testing.T) {
	clients := []models.Client{
		{
			ClientID:       7,
			FirstName:      "Иван",
			LastName:       "Петров",
			NameLatin:      strPtr("IVAN PETROV"),
			PassportNumber: "7512345678",
			PassportExpiry: time.Date(2030, time.May, 20, 0, 0, 0, 0, time.UTC),
			BirthDate:      time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			Gender:         "male",
			Phone:          "+79001234567",
			Email:          strPtr("ivan@example.com"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClientsCSV(&buf, clients))

	parsed, err := ParseClientsCSV(&buf)
	require.NoError(t, err)
	require.Len(t, parsed, 1)

	// client_id из файла не переносится
	assert.Zero(t, parsed[0].ClientID)
	assert.Equal(t, "Иван", parsed[0].FirstName)
	assert.Equal(t, "7512345678", parsed[0].PassportNumber)
	require.NotNil(t, parsed[0].Email)
	assert.Equal(t, "ivan@example.com", *parsed[0].Email)
	assert.True(t, parsed[0].BirthDate.Equal(time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseClientsCSVOptionalFieldsEmpty(t *testing.T) {
	csv := "client_id,first_name,last_name,email,phone,passport_number,passport_expiry,name_latin,birth_date,gender\n" +
		"5,Анна,Сидорова,,+79007654321,7598765432,2029-01-01,,1985-12-31,female\n"

	parsed, err := ParseClientsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Nil(t, parsed[0].Email)
	assert.Nil(t, parsed[0].NameLatin)
}

func TestParseClientsCSVRejectsEmptyFile(t *testing.T) {
	_, err := ParseClientsCSV(strings.NewReader(""))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestParseClientsCSVRejectsMissingColumn(t *testing.T) {
	csv := "first_name,last_name,phone,passport_number,passport_expiry,birth_date\n"
	_, err := ParseClientsCSV(strings.NewReader(csv))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestParseClientsCSVRejectsUnderageClient(t *testing.T) {
	birth := time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	csv := "client_id,first_name,last_name,email,phone,passport_number,passport_expiry,name_latin,birth_date,gender\n" +
		",Иван,Петров,,+79001234567,7512345678,2030-05-20,," + birth + ",male\n"

	_, err := ParseClientsCSV(strings.NewReader(csv))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestParseClientsCSVRejectsBadGender(t *testing.T) {
	csv := "client_id,first_name,last_name,email,phone,passport_number,passport_expiry,name_latin,birth_date,gender\n" +
		",Иван,Петров,,+79001234567,7512345678,2030-05-20,,1990-03-15,unknown\n"

	_, err := ParseClientsCSV(strings.NewReader(csv))
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidationFailed))
}

func TestWriteBookingsCSV(t *testing.T) {
	items := []models.BookingListItem{
		{
			BookingID:     10,
			ClientName:    "Иван Петров",
			TourTitle:     "Анталия все включено",
			BookingDate:   "2026-05-01",
			DepartureDate: "2026-06-01",
			ReturnDate:    "2026-06-08",
			TotalPrice:    7320,
			Status:        "confirmed",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBookingsCSV(&buf, items))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "booking_id,client_name,tour_title,booking_date,departure_date,return_date,total_price,status", lines[0])
	assert.Equal(t, "10,Иван Петров,Анталия все включено,2026-05-01,2026-06-01,2026-06-08,7320.00,confirmed", lines[1])
}
