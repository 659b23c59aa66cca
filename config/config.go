package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server settings
	Env        string
	Port       string
	UploadsDir string
	BackupDir  string

	// Database settings
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Auth settings
	JWTSecret       string
	AdminAPIKey     string
	SuperAdminEmail string
}

// Load reads the environment, pulling in a local .env file when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
		BackupDir:  getEnv("BACKUP_DIR", "./backup/uploads"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		AdminAPIKey:     os.Getenv("ADMIN_API_KEY"),
		SuperAdminEmail: os.Getenv("SUPER_ADMIN_EMAIL"),
	}
	return cfg
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
