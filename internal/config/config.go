package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Wiki  WikiConfig  `json:"wiki"`
	Cache CacheConfig `json:"cache"`
	Map   MapConfig   `json:"map"`
}

type WikiConfig struct {
	// URL of the wiki page whose trip tables get scraped.
	URL string `json:"url"`
}

type CacheConfig struct {
	Dir string `json:"dir"`
}

type MapConfig struct {
	Title string `json:"title"`
}

func Load() (*Config, error) {
	// .env is optional, envs win over it either way
	_ = godotenv.Load()

	config := &Config{
		Wiki: WikiConfig{
			URL: os.Getenv("TRAVEL_WIKI_URL"),
		},
		Cache: CacheConfig{
			Dir: getEnvOrDefault("CACHE_DIR", "cache"),
		},
		Map: MapConfig{
			Title: getEnvOrDefault("MAP_TITLE", "Travel Map"),
		},
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
