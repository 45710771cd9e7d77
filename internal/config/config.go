package config

import (
	"os"
	"time"
)

const (
	// Complaints
	MaxComplaintImages = 3

	// Auth
	TokenTTL    = time.Hour
	TokenIssuer = "cityvoice-service"

	// Default administrator seeded into an empty store.
	DefaultAdminName     = "Admin"
	DefaultAdminEmail    = "admin@admin.com"
	DefaultAdminPassword = "admin"
)

// Config holds the process-wide settings read from the environment.
type Config struct {
	Addr        string // HTTP listen address
	PostgresDSN string
	RedisAddr   string
	JWTSecret   string
	UploadDir   string // File area for complaint images

	// Telegram alerts are optional; empty token disables them.
	TelegramBotToken    string
	TelegramAdminChatID string
}

// Load reads the configuration from environment variables, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=user password=password dbname=cityvoicedb port=5432 sslmode=disable"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-only-secret"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),

		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChatID: os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
