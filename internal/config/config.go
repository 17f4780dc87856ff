package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string // empty selects services.DefaultGeminiModel

	// HTTP
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	ShutdownTimeoutSec int

	// Logging
	LogLevel string
}

// Load reads the environment, after applying a .env file if one exists.
// A missing GEMINI_API_KEY is not fatal: the chat endpoint reports it per request.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:               getEnvOrDefault("PORT", "5050"),
		Env:                getEnvOrDefault("ENV", EnvProduction),
		GeminiAPIKey:       strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", ""),
		CORSAllowedOrigins: getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:       int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 100<<10)),
		ShutdownTimeoutSec: getEnvAsIntOrDefault("SHUTDOWN_TIMEOUT_SECONDS", 30),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

// IsDevelopment reports whether diagnostic detail may be exposed in responses.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, EnvDevelopment)
}

func getEnvOrDefault(key, defaultVal string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
