package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	DBName    string
	AppPort   string
	UploadDir string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if _, exists := os.Stat(".env"); exists == nil {
			log.Println("Warning: .env file exists but couldn't be loaded:", err)
		}
	}

	cfg := &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "magasin"),
		AppPort:   getEnv("PORT", "5000"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	log.Printf("Configuration loaded:")
	log.Printf("  PORT: %s", cfg.AppPort)
	log.Printf("  DB_NAME: %s", cfg.DBName)
	log.Printf("  UPLOAD_DIR: %s", cfg.UploadDir)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
