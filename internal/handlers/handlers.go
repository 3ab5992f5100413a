package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "travelagency/internal/errors"
	"travelagency/internal/logger"
	"travelagency/internal/reports"
	"travelagency/internal/service"
)

type Handlers struct {
	services *service.Services
	reports  *reports.Service
}

func NewHandlers(services *service.Services, reportsService *reports.Service) *Handlers {
	return &Handlers{
		services: services,
		reports:  reportsService,
	}
}

// respondError переводит доменную ошибку в HTTP ответ. Ожидаемые исходы
// (не найдено, дубликат, зависимые записи, негодный ввод) логируются как
// warn, остальное - как ошибка хранилища.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		log := logger.WithContext(c.Request.Context())
		if apperrors.Expected(err) {
			log.Warn("Request rejected",
				"code", appErr.Code,
				"message", appErr.Message,
				"path", c.Request.URL.Path)
		} else {
			log.Error("Request failed",
				"code", appErr.Code,
				"message", appErr.Message,
				"path", c.Request.URL.Path)
		}
		c.JSON(appErr.StatusCode(), gin.H{"code": appErr.Code, "error": appErr.Message})
		return
	}

	logger.WithContext(c.Request.Context()).Error("Request failed",
		"error", err,
		"path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// pathID читает числовой идентификатор из пути
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
