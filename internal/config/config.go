// README: Config loader with env defaults for HTTP, Redis, and API keys.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv string
	HTTP   struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Cache struct {
		TTL time.Duration
	}
	Maps struct {
		APIKey string
	}
	Weather struct {
		APIKey  string
		BaseURL string
		RPS     int
	}
	AI struct {
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.AppEnv = envOrDefault("APP_ENV", "prod")
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("TRIP_REDIS_ADDR", "localhost:6379")
	cfg.Cache.TTL = time.Duration(envOrDefaultInt("TRIP_CACHE_TTL_SECONDS", 900)) * time.Second
	cfg.Maps.APIKey = envOrError("GOOGLEMAPS_API_KEY")
	cfg.Weather.APIKey = envOrError("OPENWEATHER_API_KEY")
	cfg.Weather.BaseURL = envOrDefault("OPENWEATHER_BASE_URL", "")
	cfg.Weather.RPS = envOrDefaultInt("OPENWEATHER_RPS", 5)
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
