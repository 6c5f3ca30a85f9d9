package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type PollConfig struct {
	Interval time.Duration
}

type RatesConfig struct {
	SourceURL string
	CacheTTL  time.Duration
}

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Poll    PollConfig
	Rates   RatesConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			CORSOrigins: splitEnv("CORS_ORIGINS", "https://tradux.online,http://localhost:5173"),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_API_URL", "http://localhost:8000/api"),
			Timeout: getDurationEnv("BACKEND_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "tradux-portal-dev-secret"),
			AccessTokenTTL:  getDurationEnv("JWT_ACCESS_TTL", time.Hour*24),
			RefreshTokenTTL: getDurationEnv("JWT_REFRESH_TTL", time.Hour*24*7),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "contact@tradux.online"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Poll: PollConfig{
			Interval: getDurationEnv("POLL_INTERVAL", 5*time.Second),
		},
		Rates: RatesConfig{
			SourceURL: getEnv("RATES_SOURCE_URL", "https://api.exchangerate-api.com/v4/latest/USD"),
			CacheTTL:  getDurationEnv("RATES_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration in %s, using default %s", key, fallback)
		return fallback
	}
	return d
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
