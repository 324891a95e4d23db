package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды хранилища жалоб
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage Config
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"file"`
	StorageFile    string `env:"STORAGE_FILE" envDefault:"data/reports.json"`
	SQLiteDir      string `env:"SQLITE_DIR" envDefault:"data"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Map Config
	DefaultLat  float64 `env:"DEFAULT_LAT" envDefault:"40.7128"`
	DefaultLng  float64 `env:"DEFAULT_LNG" envDefault:"-74.0060"`
	DefaultZoom int     `env:"DEFAULT_ZOOM" envDefault:"13"`

	// Location Config
	LocationTimeout time.Duration `env:"LOCATION_TIMEOUT" envDefault:"10s"`
	LocationMaxAge  time.Duration `env:"LOCATION_MAX_AGE" envDefault:"5m"`

	// Workflow Config
	SubmitLatency time.Duration `env:"SUBMIT_LATENCY" envDefault:"1500ms"`
	ToastTTL      time.Duration `env:"TOAST_TTL" envDefault:"5s"`
	ClockTick     time.Duration `env:"CLOCK_TICK" envDefault:"60s"`
	DialogTTL     time.Duration `env:"DIALOG_TTL" envDefault:"2m"`

	// API Keys for admin endpoints
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StorageBackend:  getEnv("STORAGE_BACKEND", StorageFile),
		StorageFile:     getEnv("STORAGE_FILE", "data/reports.json"),
		SQLiteDir:       getEnv("SQLITE_DIR", "data"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:   getEnvAsInt("REDIS_POOL_SIZE", 10),
		DefaultLat:      getEnvAsFloat("DEFAULT_LAT", 40.7128),
		DefaultLng:      getEnvAsFloat("DEFAULT_LNG", -74.0060),
		DefaultZoom:     getEnvAsInt("DEFAULT_ZOOM", 13),
		LocationTimeout: getEnvAsDuration("LOCATION_TIMEOUT", 10*time.Second),
		LocationMaxAge:  getEnvAsDuration("LOCATION_MAX_AGE", 5*time.Minute),
		SubmitLatency:   getEnvAsDuration("SUBMIT_LATENCY", 1500*time.Millisecond),
		ToastTTL:        getEnvAsDuration("TOAST_TTL", 5*time.Second),
		ClockTick:       getEnvAsDuration("CLOCK_TICK", 60*time.Second),
		DialogTTL:       getEnvAsDuration("DIALOG_TTL", 2*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	switch cfg.StorageBackend {
	case StorageFile, StorageRedis, StorageSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND: %s", cfg.StorageBackend)
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
