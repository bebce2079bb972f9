package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig reúne todas las variables de configuración del proceso.
type AppConfig struct {
	Port            string
	Env             string
	DataDir         string
	UploadDir       string
	SMTPHost        string
	SMTPPort        int
	PasetoSecretKey []byte
}

// Load carga la configuración desde .env o las variables de entorno.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("ENVIRONMENT", "development"),
		DataDir:   getEnv("DATA_DIR", "."),
		UploadDir: getEnv("UPLOAD_DIR", "img"),
		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		log.Fatal("SMTP_PORT must be a number")
	}
	cfg.SMTPPort = port

	key := getEnv("PASETO_SECRET_KEY", "parrillas-del-gancho-dev-key-32b")
	if len(key) != 32 {
		log.Fatal("PASETO_SECRET_KEY must be 32 characters long!")
	}
	cfg.PasetoSecretKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
