package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	APIBaseURL     string
	LoginRoute     string
	AllowedOrigins string
	HTTPTimeout    time.Duration

	// SessionDriver selects where the bearer token is persisted: sqlite, postgres or memory.
	SessionDriver string
	DBPath        string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8000"),
		LoginRoute:     getEnv("LOGIN_ROUTE", "/login"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		HTTPTimeout:    getDuration("HTTP_TIMEOUT", 0),
		SessionDriver:  getEnv("SESSION_DRIVER", "sqlite"),
		DBPath:         getEnv("DB_PATH", "./dashboard.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "sms_dashboard"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
