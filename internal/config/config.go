package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration for the yearwheel service.
type Config struct {
	HTTPAddress string
	DBPath      string
	BaseURL     string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	HolidayFeedURL     string
	HolidayCountryCode string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// DevMode disables auth so local wheels can be built without an
	// identity provider.
	DevMode bool
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		DBPath:      getEnv("DB_PATH", defaultDBPath()),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),

		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "https://login.microsoftonline.com/common/v2.0"),
		JWTAudience: getEnv("JWT_AUDIENCE", "yearwheel-api"),

		HolidayFeedURL:     getEnv("HOLIDAY_FEED_URL", "https://date.nager.at/api/v3/PublicHolidays"),
		HolidayCountryCode: getEnv("HOLIDAY_COUNTRY_CODE", "NO"),

		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  getDurationEnv("IDLE_TIMEOUT", 120*time.Second),

		DevMode: getBoolEnv("DEV_MODE", false),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "yearwheel.db"
	}
	return home + "/.yearwheel/yearwheel.db"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
