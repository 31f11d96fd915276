package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	AssetDir        string
	SessionBackend  string // memory|redis
	SessionPrefix   string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	ShutdownTimeout time.Duration
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		AssetDir:        env("ASSET_DIR", "frontend"),
		SessionBackend:  env("SESSION_BACKEND", "memory"),
		SessionPrefix:   env("SESSION_PREFIX", "session:"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		ShutdownTimeout: time.Duration(atoi("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
