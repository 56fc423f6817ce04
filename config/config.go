package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries process configuration. The seed admin credential is
// externalized; nothing is hardcoded in source.
type Config struct {
	Port          string
	GinMode       string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}
	return Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
