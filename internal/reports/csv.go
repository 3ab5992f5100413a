package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/models"
	"travelagency/internal/validation"
)

const dateLayout = "2006-01-02"

// Колонки выгрузки клиентов; импорт принимает файл в том же виде
var clientsHeader = []string{
	"client_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"passport_number",
	"passport_expiry",
	"name_latin",
	"birth_date",
	"gender",
}

var bookingsHeader = []string{
	"booking_id",
	"client_name",
	"tour_title",
	"booking_date",
	"departure_date",
	"return_date",
	"total_price",
	"status",
}

// WriteClientsCSV пишет клиентов в CSV с заголовком
func WriteClientsCSV(w io.Writer, clients []models.Client) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(clientsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, client := range clients {
		record := []string{
			strconv.FormatInt(client.ClientID, 10),
			client.FirstName,
			client.LastName,
			stringOrEmpty(client.Email),
			client.Phone,
			client.PassportNumber,
			client.PassportExpiry.Format(dateLayout),
			stringOrEmpty(client.NameLatin),
			client.BirthDate.Format(dateLayout),
			client.Gender,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write client %d: %w", client.ClientID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ParseClientsCSV разбирает CSV выгрузки клиентов. Колонка client_id
// игнорируется: идентификаторы назначает база. Любая негодная строка
// отклоняет весь файл.
func ParseClientsCSV(r io.Reader) ([]models.Client, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, apperrors.ValidationFailed("csv file is empty")
	}
	if err != nil {
		return nil, apperrors.ValidationFailed("failed to read csv header: %v", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, apperrors.ValidationFailed("line %d: %v", line, err)
		}

		client, err := parseClientRecord(record, cols)
		if err != nil {
			return nil, apperrors.ValidationFailed("line %d: %v", line, err)
		}
		clients = append(clients, *client)
	}

	return clients, nil
}

// WriteBookingsCSV пишет строки отчета по бронированиям
func WriteBookingsCSV(w io.Writer, items []models.BookingListItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(bookingsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, item := range items {
		record := []string{
			strconv.FormatInt(item.BookingID, 10),
			item.ClientName,
			item.TourTitle,
			item.BookingDate,
			item.DepartureDate,
			item.ReturnDate,
			strconv.FormatFloat(item.TotalPrice, 'f', 2, 64),
			item.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write booking %d: %w", item.BookingID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"first_name", "last_name", "phone", "passport_number", "passport_expiry", "birth_date", "gender"} {
		if _, ok := cols[required]; !ok {
			return nil, apperrors.ValidationFailed("missing required column %s", required)
		}
	}
	return cols, nil
}

func parseClientRecord(record []string, cols map[string]int) (*models.Client, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	birthDate, err := time.Parse(dateLayout, field("birth_date"))
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date %q", field("birth_date"))
	}
	passportExpiry, err := time.Parse(dateLayout, field("passport_expiry"))
	if err != nil {
		return nil, fmt.Errorf("invalid passport_expiry %q", field("passport_expiry"))
	}

	now := time.Now()
	if err := validation.ClientAge(birthDate, now); err != nil {
		return nil, err
	}
	if err := validation.PassportExpiry(passportExpiry, now); err != nil {
		return nil, err
	}

	gender := field("gender")
	if gender != "male" && gender != "female" {
		return nil, fmt.Errorf("invalid gender %q", gender)
	}

	client := &models.Client{
		FirstName:      field("first_name"),
		LastName:       field("last_name"),
		PassportNumber: field("passport_number"),
		PassportExpiry: passportExpiry,
		BirthDate:      birthDate,
		Gender:         gender,
		Phone:          field("phone"),
	}
	if client.FirstName == "" || client.LastName == "" || client.PassportNumber == "" || client.Phone == "" {
		return nil, fmt.Errorf("required fields are empty")
	}

	if email := field("email"); email != "" {
		client.Email = &email
	}
	if nameLatin := field("name_latin"); nameLatin != "" {
		client.NameLatin = &nameLatin
	}

	return client, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
