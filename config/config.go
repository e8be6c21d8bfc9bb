package config

import (
	"fmt"
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	Port          string
	Database      DatabaseConfig
	Environment   string
	MaxUploadSize int64
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		fmt.Println("⚠️  Warning: DB_PASSWORD environment variable is not set.")
		fmt.Println("   Profile persistence will be unavailable until it is configured.")
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetAppConfig() AppConfig {
	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", ""), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 10 << 20 // 10MB default for resume documents
	}

	return AppConfig{
		Port:          getEnv("PORT", "8081"),
		Database:      GetDatabaseConfig(),
		Environment:   getEnv("ENVIRONMENT", "development"),
		MaxUploadSize: maxUpload,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
