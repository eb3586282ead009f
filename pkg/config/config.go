package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// App holds runtime configuration derived from env vars or files.
type App struct {
	DatabaseDriver   string
	DatabaseURL      string
	MySQL            MySQL
	AutoCreateSchema bool

	KafkaBrokers string
	KafkaTopic   string

	APIPort     string
	Environment string
	LogLevel    string
	LogEncoding string
	LogFile     string
	CORSOrigins []string
}

// MySQL holds the discrete connection parameters used when DATABASE_URL is not set.
type MySQL struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Load reads an optional .env file into the environment and then calls FromEnv.
// Variables already present in the environment are not overridden.
func Load(envFiles ...string) (App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, err
		}
	}
	return FromEnv(), nil
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() App {
	return App{
		DatabaseDriver: strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MySQL: MySQL{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Database: getEnv("MYSQL_DB", "daily_log"),
		},
		AutoCreateSchema: getBool("DB_AUTO_CREATE", false),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "daily-log-events"),
		APIPort:          getEnv("API_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "production"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogEncoding:      getEnv("LOG_ENCODING", "json"),
		LogFile:          os.Getenv("LOG_FILE"),
		CORSOrigins:      getCORSOrigins(),
	}
}

// Brokers splits KafkaBrokers into a clean list. An empty result disables event publishing.
func (a App) Brokers() []string {
	return splitList(a.KafkaBrokers)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getCORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return splitList(raw)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
