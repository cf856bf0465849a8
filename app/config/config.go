package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the portal needs at startup. All business data
// lives behind APIBaseURL; this process owns no storage of its own.
type Config struct {
	Addr          string
	APIBaseURL    string
	SessionSecret string
	SessionHours  int
	CEPBaseURL    string
}

// Load reads the environment (and an optional .env file).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		APIBaseURL:    strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionHours:  getEnvInt("SESSION_HOURS", 24),
		CEPBaseURL:    getEnv("CEP_BASE_URL", "https://viacep.com.br/ws"),
	}

	missing := []string{}
	if cfg.APIBaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// SessionTTL is how long a login cookie stays valid.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionHours) * time.Hour
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
