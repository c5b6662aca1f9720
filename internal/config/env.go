package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	LogLevel               string
	LogFormat              string
	MaxUploadMB            int
	MinTextLength          int
	AllowedOrigins         []string
	ShutdownTimeoutSeconds int
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "5000"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		MaxUploadMB:            getEnvInt("MAX_UPLOAD_MB", 32),
		MinTextLength:          getEnvInt("MIN_TEXT_LENGTH", 50),
		AllowedOrigins:         getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeoutSeconds: getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}

	if cfg.MaxUploadMB <= 0 {
		log.Printf("WARN: MAX_UPLOAD_MB=%d must be positive, using default 32", cfg.MaxUploadMB)
		cfg.MaxUploadMB = 32
	}

	return cfg
}

// MaxUploadBytes is the multipart body limit derived from MaxUploadMB.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// Helper to read environment variables with a default fallback.
// A variable set to the empty string counts as unset.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
