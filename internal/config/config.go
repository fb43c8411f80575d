package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Presence Engine Config
	EntryBufferMeters      float64       `env:"ENTRY_BUFFER_METERS" envDefault:"0"`
	ExitBufferMeters       float64       `env:"EXIT_BUFFER_METERS" envDefault:"50"`
	MaxRegions             int           `env:"MAX_REGIONS" envDefault:"20"`
	DegradedAccuracyMeters float64       `env:"DEGRADED_ACCURACY_METERS" envDefault:"200"`
	CatalogRetryCount      int           `env:"CATALOG_RETRY_COUNT" envDefault:"3"`
	CatalogRetryBaseDelay  time.Duration `env:"CATALOG_RETRY_BASE_DELAY" envDefault:"100ms"`
	ZoneCatalogCacheTTL    time.Duration `env:"ZONE_CATALOG_CACHE_TTL" envDefault:"5m"`
	DedupWindow            time.Duration `env:"DEDUP_WINDOW" envDefault:"60s"`
	DedupMaxEntries        int           `env:"DEDUP_MAX_ENTRIES" envDefault:"10000"`
	NotificationTTL        time.Duration `env:"NOTIFICATION_TTL" envDefault:"60s"`

	// Push Dispatcher Config
	PushDispatcherURL string        `env:"PUSH_DISPATCHER_URL"`
	PushSecret        string        `env:"PUSH_SECRET"`
	PushTimeout       time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxRetries    int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay     time.Duration `env:"PUSH_BASE_DELAY" envDefault:"500ms"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		EntryBufferMeters:      getEnvAsFloat("ENTRY_BUFFER_METERS", 0),
		ExitBufferMeters:       getEnvAsFloat("EXIT_BUFFER_METERS", 50),
		MaxRegions:             getEnvAsInt("MAX_REGIONS", 20),
		DegradedAccuracyMeters: getEnvAsFloat("DEGRADED_ACCURACY_METERS", 200),
		CatalogRetryCount:      getEnvAsInt("CATALOG_RETRY_COUNT", 3),
		CatalogRetryBaseDelay:  getEnvAsDuration("CATALOG_RETRY_BASE_DELAY", 100*time.Millisecond),
		ZoneCatalogCacheTTL:    getEnvAsDuration("ZONE_CATALOG_CACHE_TTL", 5*time.Minute),
		DedupWindow:            getEnvAsDuration("DEDUP_WINDOW", 60*time.Second),
		DedupMaxEntries:        getEnvAsInt("DEDUP_MAX_ENTRIES", 10000),
		NotificationTTL:        getEnvAsDuration("NOTIFICATION_TTL", 60*time.Second),
		PushDispatcherURL:      os.Getenv("PUSH_DISPATCHER_URL"),
		PushSecret:             os.Getenv("PUSH_SECRET"),
		PushTimeout:            getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxRetries:         getEnvAsInt("PUSH_MAX_RETRIES", 3),
		PushBaseDelay:          getEnvAsDuration("PUSH_BASE_DELAY", 500*time.Millisecond),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
