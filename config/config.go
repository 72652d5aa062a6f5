package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	Timezone        string
	Store           string // memory|sqlite
	DBPath          string
	StoreLatency    time.Duration
	WeatherURL      string
	WeatherLocation string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	latencyMS, _ := strconv.Atoi(get("STORE_LATENCY_MS", "0"))
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "America/Los_Angeles"),
		Store:           get("STORE", "memory"),
		DBPath:          get("DB_PATH", "farmstead.db"),
		StoreLatency:    time.Duration(latencyMS) * time.Millisecond,
		WeatherURL:      get("WEATHER_URL", ""),
		WeatherLocation: get("WEATHER_LOCATION", "Central Valley, CA"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
