package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service's runtime settings, sourced from the environment.
type Config struct {
	Port        int
	StaticDir   string
	LogLevel    string
	MaxUploadMB int64
}

const (
	defaultPort        = 8080
	defaultStaticDir   = "./frontend"
	defaultLogLevel    = "info"
	defaultMaxUploadMB = 64
)

// Load reads configuration from the environment, consulting a .env file
// first when one exists. Invalid numeric values fall back to their defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        intEnv("IMGPRESS_PORT", defaultPort),
		StaticDir:   strEnv("IMGPRESS_STATIC_DIR", defaultStaticDir),
		LogLevel:    strEnv("IMGPRESS_LOG_LEVEL", defaultLogLevel),
		MaxUploadMB: int64(intEnv("IMGPRESS_MAX_UPLOAD_MB", defaultMaxUploadMB)),
	}
}

func strEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
