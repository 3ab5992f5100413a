package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "travelagency/internal/errors"
)

func performRequest(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		if _, ok := pathID(c, "id"); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := performRequest(r, "GET", "/items/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, "GET", "/items/-5")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, "GET", "/items/42")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRespondErrorMapsDomainCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
	}{
		{apperrors.NotFound("client 1 not found"), http.StatusNotFound},
		{apperrors.DuplicateKey("passport already exists"), http.StatusConflict},
		{apperrors.HasDependents("client has bookings"), http.StatusConflict},
		{apperrors.ValidationFailed("bad date"), http.StatusBadRequest},
		{apperrors.StorageUnavailable(errors.New("connection refused")), http.StatusServiceUnavailable},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := gin.New()
		r.GET("/fail", func(c *gin.Context) {
			respondError(c, tc.err)
		})

		w := performRequest(r, "GET", "/fail")
		assert.Equal(t, tc.status, w.Code, "error: %v", tc.err)
		assert.Contains(t, w.Body.String(), "error")
	}
}
