package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del servidor leída del entorno.
type Config struct {
	ServerPort string
	CORSOrigin string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	ReservasAPIURL string
	ReservasAPIKey string

	CarritoPath string
	SesionTTL   time.Duration
}

// LoadConfig carga la configuración desde variables de entorno. El archivo
// .env es opcional; en producción las variables vienen del entorno directo.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "medellintravel"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Medellin Travel"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		ReservasAPIURL: os.Getenv("RESERVAS_API_URL"),
		ReservasAPIKey: os.Getenv("RESERVAS_API_KEY"),

		CarritoPath: getEnv("CARRITO_PATH", "data/carrito.json"),
	}

	if cfg.ReservasAPIURL == "" {
		return nil, fmt.Errorf("RESERVAS_API_URL no está configurada")
	}

	ttlMin, err := strconv.Atoi(getEnv("SESION_TTL_MINUTOS", "120"))
	if err != nil || ttlMin <= 0 {
		return nil, fmt.Errorf("SESION_TTL_MINUTOS inválido: %s", os.Getenv("SESION_TTL_MINUTOS"))
	}
	cfg.SesionTTL = time.Duration(ttlMin) * time.Minute

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión de Postgres.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
