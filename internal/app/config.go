package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret      string        // Required: HS256 signing secret
	PasswordSecret string        // Required: password encoder secret
	TokenTTL       time.Duration // Optional: token lifetime (default: 24h)

	DatabaseFile   string // Optional: path to SQLite database file (default: ./stationhub.db)
	RegionsBaseURL string // Optional: upstream regions API base URL

	MinioEndpoint  string // Optional: object store endpoint (default: localhost:9000)
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string // Optional: media bucket (default: media)
	MinioUseSSL    bool

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		JWTSecret:      os.Getenv("JWT_SECRET"),
		PasswordSecret: os.Getenv("PASSWORD_SECRET"),
		TokenTTL:       getEnvDurationOrDefault("TOKEN_TTL", 24*time.Hour),

		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "stationhub.db"),
		RegionsBaseURL: getEnvOrDefault("REGIONS_BASE_URL", "https://www.emsifa.com/api-wilayah-indonesia/api"),

		MinioEndpoint:  getEnvOrDefault("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnvOrDefault("MINIO_BUCKET", "media"),
		MinioUseSSL:    getEnvBoolOrDefault("MINIO_USE_SSL", false),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
