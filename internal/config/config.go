package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddress string

	LogLevel  string
	LogFormat string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBPath            string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	// MaxUploadBytes caps the multipart file size accepted by the import endpoint.
	MaxUploadBytes int64

	// SeedDemoData imports the bundled sample export on startup when the store is empty.
	SeedDemoData bool
}

// Load loads configuration from environment variables and an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:           getenv("APP_SERVICE", "paceline"),
		AppVersion:        getenv("APP_VERSION", "0.1.0"),
		Environment:       getenv("ENVIRONMENT", "development"),
		HTTPAddress:       getenv("HTTP_ADDRESS", ":8080"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "json"),
		DBType:            getenv("DATABASE_TYPE", "sqlite"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "paceline"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBPath:            getenv("DATABASE_PATH", "paceline.db"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		MaxUploadBytes:    getenvInt64("MAX_UPLOAD_BYTES", 16<<20),
		SeedDemoData:      getenvBool("SEED_DEMO_DATA", false),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// Module provides configuration values to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewZoneCatalogHolder),
)
