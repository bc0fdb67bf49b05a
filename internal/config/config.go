package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, takes precedence over the individual components.
type DatabaseConfig struct {
	URL                 string
	Host                string
	Port                string
	User                string
	Password            string
	Name                string
	SSLMode             string
	MaxOpenConns        int
	MaxIdleConns        int
	ConnMaxLifetimeSec  int
	// ConnectRetries is the number of extra startup pings after the first fails.
	ConnectRetries      int
	ConnectRetryDelayMs int
	AutoMigrate         bool
}

// AuthConfig holds token signing and password hashing settings.
type AuthConfig struct {
	JWTSecret   string
	TokenTTLHrs int
	BcryptCost  int
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded,
// except the JWT fallback secret kept for compatibility with existing clients.
type AppConfig struct {
	Port     string
	Timezone string
	Database DatabaseConfig
	Auth     AuthConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Port:     getEnv("PORT", "8080"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			URL:                 getEnv("DATABASE_URL", ""),
			Host:                getEnv("DB_HOST", ""),
			Port:                getEnv("DB_PORT", "5432"),
			User:                getEnv("DB_USER", ""),
			Password:            getEnv("DB_PASSWORD", ""),
			Name:                getEnv("DB_NAME", ""),
			SSLMode:             getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:        getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:        getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec:  getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectRetries:      getEnvInt("DB_CONNECT_RETRIES", 5),
			ConnectRetryDelayMs: getEnvInt("DB_CONNECT_RETRY_DELAY_MS", 500),
			AutoMigrate:         getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", "secret"),
			TokenTTLHrs: getEnvInt("JWT_TTL_HOURS", 24),
			BcryptCost:  getEnvInt("BCRYPT_COST", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
