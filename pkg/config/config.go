package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	DatabaseURL      string
	GoogleMapsAPIKey string
	JWTSecret        string
	JWTAccessExpiry  int64
	JWTRefreshExpiry int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=foodfinder password=foodfinder dbname=foodfinder port=5432 sslmode=disable"),
		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
		JWTAccessExpiry:  getEnvAsInt64("JWT_ACCESS_EXPIRY", 60*60),        // 1 hour
		JWTRefreshExpiry: getEnvAsInt64("JWT_REFRESH_EXPIRY", 7*24*60*60), // 7 days
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
