package errors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// Коды ошибок доменных операций
const (
	CodeNotFound           = "NOT_FOUND"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	CodeHasDependents      = "HAS_DEPENDENTS"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeStorageFault       = "STORAGE_FAULT"
)

// AppError - ошибка доменной операции с кодом и HTTP статусом
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// StatusCode возвращает HTTP статус для кода ошибки
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDuplicateKey, CodeHasDependents:
		return http.StatusConflict
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func DuplicateKey(format string, args ...any) *AppError {
	return &AppError{Code: CodeDuplicateKey, Message: fmt.Sprintf(format, args...)}
}

func HasDependents(format string, args ...any) *AppError {
	return &AppError{Code: CodeHasDependents, Message: fmt.Sprintf(format, args...)}
}

func ValidationFailed(format string, args ...any) *AppError {
	return &AppError{Code: CodeValidationFailed, Message: fmt.Sprintf(format, args...)}
}

func StorageUnavailable(err error) *AppError {
	return &AppError{Code: CodeStorageUnavailable, Message: err.Error()}
}

func StorageFault(err error) *AppError {
	return &AppError{Code: CodeStorageFault, Message: err.Error()}
}

// IsCode reports whether err is an AppError with the given code
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Expected reports whether err is an expected outcome (user-facing message, not a fault)
func Expected(err error) bool {
	return IsCode(err, CodeNotFound) || IsCode(err, CodeHasDependents) ||
		IsCode(err, CodeDuplicateKey) || IsCode(err, CodeValidationFailed)
}

// FromPostgres переводит ошибки драйвера в доменную таксономию.
// Ограничения в схеме служат подстраховкой прикладных проверок, поэтому
// нарушение уникальности и внешних ключей отображается в те же коды.
func FromPostgres(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, sql.ErrConnDone) {
		return StorageUnavailable(err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505": // unique_violation
			return DuplicateKey("duplicate value for %s", pqErr.Constraint)
		case pqErr.Code == "23503": // foreign_key_violation
			return HasDependents("operation blocked by dependent records (%s)", pqErr.Constraint)
		case pqErr.Code.Class() == "08": // connection exceptions
			return StorageUnavailable(err)
		}
	}

	return StorageFault(err)
}
