package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("client %d not found", 1).StatusCode())
	assert.Equal(t, http.StatusConflict, DuplicateKey("passport").StatusCode())
	assert.Equal(t, http.StatusConflict, HasDependents("bookings exist").StatusCode())
	assert.Equal(t, http.StatusBadRequest, ValidationFailed("age").StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, StorageUnavailable(fmt.Errorf("down")).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, StorageFault(fmt.Errorf("boom")).StatusCode())
}

func TestFromPostgresUniqueViolation(t *testing.T) {
	err := FromPostgres(&pq.Error{Code: "23505", Constraint: "clients_passport_number_key"})
	assert.True(t, IsCode(err, CodeDuplicateKey))
}

func TestFromPostgresForeignKeyViolation(t *testing.T) {
	err := FromPostgres(&pq.Error{Code: "23503", Constraint: "cities_country_id_fkey"})
	assert.True(t, IsCode(err, CodeHasDependents))
}

func TestFromPostgresConnectionFailure(t *testing.T) {
	err := FromPostgres(&pq.Error{Code: "08006"})
	assert.True(t, IsCode(err, CodeStorageUnavailable))
}

func TestFromPostgresUnknownError(t *testing.T) {
	err := FromPostgres(fmt.Errorf("disk full"))
	assert.True(t, IsCode(err, CodeStorageFault))
}

func TestFromPostgresKeepsAppError(t *testing.T) {
	orig := NotFound("booking 7 not found")
	assert.Equal(t, orig, FromPostgres(orig))
}

func TestExpected(t *testing.T) {
	assert.True(t, Expected(NotFound("x")))
	assert.True(t, Expected(HasDependents("x")))
	assert.False(t, Expected(StorageFault(fmt.Errorf("x"))))
}
