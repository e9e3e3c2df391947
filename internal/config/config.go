package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres pool described by the environment. The returned
// handle is the single shared persistence resource; it is constructed here
// once and passed into the pipeline explicitly, never reached as a global.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "billing"),
			getEnv("DB_SSLMODE", "disable"),
		)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Env returns the runtime environment name.
func Env() string {
	return getEnv("APP_ENV", "development")
}

// LogLevel returns the configured log level.
func LogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
