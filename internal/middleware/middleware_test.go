package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travelagency/internal/models"
)

func TestUserContextRoundTrip(t *testing.T) {
	ctx := ContextWithUser(context.Background(), 42, models.RoleAdmin)

	id, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	role, ok := UserRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestUserContextEmpty(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserRoleFromContext(context.Background())
	assert.False(t, ok)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(role string, authenticated bool) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if authenticated {
				c.Request = c.Request.WithContext(ContextWithUser(c.Request.Context(), 1, role))
			}
			c.Next()
		})
		r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	cases := []struct {
		name          string
		role          string
		authenticated bool
		status        int
	}{
		{"admin allowed", models.RoleAdmin, true, http.StatusOK},
		{"manager forbidden", models.RoleManager, true, http.StatusForbidden},
		{"anonymous forbidden", "", false, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/admin", nil)
			newRouter(tc.role, tc.authenticated).ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
