// Package config reads the server configuration from the environment,
// loading a local .env file when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string

	LogLevel string
	LogFile  string

	ReleaseMode  bool
	AllowOrigins []string

	RateLimit  int
	RateWindow time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getenv("PORT", "8080"),
		MongoURI:     getenv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DatabaseName: getenv("DB_NAME", "bugtrail"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		ReleaseMode:  os.Getenv("GIN_MODE") == "release",
		AllowOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RateLimit:    getenvInt("RATE_LIMIT", 60),
		RateWindow:   time.Minute,
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
