package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	BaseURL                string
	DatabaseDSN            string
	RedisAddr              string
	RateLimit              int
	JWTSecret              string
	TokenTTLMinutes        int
	InviteTTLHours         int
	ShutdownTimeoutSeconds int
	LogFile                string
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		BaseURL:                getEnv("BASE_URL", fmt.Sprintf("http://%s:%s", appHost, appPort)),
		DatabaseDSN:            getEnv("DATABASE_DSN", "flowdesk.db"),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		TokenTTLMinutes:        getEnvAsInt("TOKEN_TTL_MINUTES", 120),
		InviteTTLHours:         getEnvAsInt("INVITE_TTL_HOURS", 72),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		LogFile:                getEnv("LOG_FILE", "logs/flowdesk.log"),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.TokenTTLMinutes <= 0 {
		log.Fatal("TOKEN_TTL_MINUTES must be greater than 0")
	}
	if cfg.InviteTTLHours <= 0 {
		log.Fatal("INVITE_TTL_HOURS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
