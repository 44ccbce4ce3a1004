package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración del servidor leída del entorno
type Config struct {
	ServerPort string
	CORSOrigin string

	// Conexión a PostgreSQL: DATABASE_URL completa o partes DB_*
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// SMTP es opcional; sin él no se envían correos
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

// LoadConfig carga las variables de entorno, leyendo .env si existe
func LoadConfig() (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("PORT", "3001"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Registro de Personas"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if cfg.DatabaseURL == "" && (cfg.DBUser == "" || cfg.DBName == "") {
		return nil, fmt.Errorf("debe definirse DATABASE_URL, o bien DB_USER y DB_NAME")
	}

	return cfg, nil
}

// GetDBConnString devuelve la cadena de conexión a PostgreSQL
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// HasSMTP indica si hay configuración SMTP suficiente para enviar correos
func (c *Config) HasSMTP() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
