package config

import (
	"os"
	"strconv"
	"time"

	"travelagency/internal/database"
	"travelagency/internal/messaging"
	"travelagency/internal/search"
)

// Режимы удаления клиента (см. DESIGN.md): прикладной запрет либо каскад из схемы.
const (
	ClientDeleteGuard   = "guard"
	ClientDeleteCascade = "cascade"
)

// Config содержит конфигурацию приложения
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	// Политика удаления клиентов: guard | cascade
	ClientDeleteMode string

	// Интервал фонового перевода оплаченных бронирований в completed
	CompletionCheckInterval time.Duration

	Database      database.Config
	NATS          messaging.Config
	Elasticsearch search.Config
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		ClientDeleteMode: getEnv("CLIENT_DELETE_MODE", ClientDeleteGuard),

		CompletionCheckInterval: time.Duration(getEnvInt("COMPLETION_CHECK_INTERVAL_SEC", 3600)) * time.Second,

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "travel_agency"),
			Password:           getEnv("DB_PASSWORD", "travel_agency"),
			DBName:             getEnv("DB_NAME", "travel_agency"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 60),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 5),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "travel-agency"),
			ClientID:  getEnv("NATS_CLIENT_ID", "travel-agency-api"),
		},

		Elasticsearch: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_INDEX", "tours"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},
	}
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленное значение переменной окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
