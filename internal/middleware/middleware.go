package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"travelagency/internal/logger"
	"travelagency/internal/models"
	"travelagency/internal/service"
)

// Ctx keys and helpers for the authenticated user
// Using unexported type to avoid collisions

type ctxKey string

const (
	userIDKey   ctxKey = "user_id"
	userRoleKey ctxKey = "user_role"
)

func ContextWithUser(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func UserRoleFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userRoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// RequestID присваивает каждому запросу идентификатор; он попадает в контекст
// (его подхватывает logger.WithContext) и в заголовок ответа X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = logger.NewRequestID()
		}

		c.Header("X-Request-ID", requestID)
		// logger.WithContext ожидает строковый ключ "request_id"
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), "request_id", requestID))

		c.Next()
	}
}

// CORS middleware для обработки CORS запросов
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// Logger middleware для структурированного логирования запросов
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		userID, exists := c.Get("user_id")

		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}

		if exists {
			logFields = append(logFields, "user_id", userID)
		}

		if c.Writer.Status() >= 500 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request completed with error", logFields...)
		}
	}
}

// Recovery middleware для восстановления после паники с детальным логированием
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// BasicAuth аутентифицирует пользователя по HTTP Basic Auth.
// Логин и роль кладутся в контекст запроса для обработчиков и логов.
func BasicAuth(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic realm=\"Restricted\"")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication is unavailable"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		c.Set("user_id", user.UserID)
		c.Set("user_role", user.Role)
		c.Request = c.Request.WithContext(ContextWithUser(c.Request.Context(), user.UserID, user.Role))

		c.Next()
	}
}

// RequireAdmin пропускает только пользователей с ролью admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := UserRoleFromContext(c.Request.Context())
		if !ok || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Metrics middleware собирает счетчики и латентность запросов.
// Метки берут шаблон маршрута, а не сырой путь, чтобы не раздувать кардинальность.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
