package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// remote employee source config
	EMPLOYEE_API_URL     string
	EMPLOYEE_API_LIMIT   int
	EMPLOYEE_API_TIMEOUT time.Duration
	// bookmark storage config
	BOOKMARK_FILE_PATH string
	// view config
	PAGE_SIZE int
	// logger config
	LOG_FILE_PATH string
	// stub source config
	STUB_PORT         string
	STUB_FIXTURE_PATH string
}

func LoadEnvConfig() error {
	// A missing .env file is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	DefaultEnvConfig = &envConfig{
		EMPLOYEE_API_URL:     getEnvString("EMPLOYEE_API_URL", "https://dummyjson.com"),
		EMPLOYEE_API_LIMIT:   getEnvInt("EMPLOYEE_API_LIMIT", 20),
		EMPLOYEE_API_TIMEOUT: getEnvDuration("EMPLOYEE_API_TIMEOUT", 10*time.Second),
		BOOKMARK_FILE_PATH:   getEnvString("BOOKMARK_FILE_PATH", "bookmarks.json"),
		PAGE_SIZE:            getEnvInt("PAGE_SIZE", 9),
		LOG_FILE_PATH:        getEnvString("LOG_FILE_PATH", ""),
		STUB_PORT:            getEnvString("STUB_PORT", "8081"),
		STUB_FIXTURE_PATH:    getEnvString("STUB_FIXTURE_PATH", "testdata/users.yaml"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
