package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL string
	LogLevel    string
	Environment string

	// CronSpecCheck drives the periodic expiry check. The default fires
	// every minute so the in-process time window gate decides when to act.
	CronSpecCheck string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	// TestEmailRecipient receives all outgoing email outside production,
	// regardless of the configured destination address.
	TestEmailRecipient string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.CronSpecCheck = os.Getenv("CRON_SPEC_CHECK")
	if cfg.CronSpecCheck == "" {
		cfg.CronSpecCheck = "* * * * *"
	}

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is not set")
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		cfg.SMTPPort = 587
	} else {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}

	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")

	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	if cfg.SMTPFrom == "" {
		return nil, fmt.Errorf("SMTP_FROM is not set")
	}

	cfg.TestEmailRecipient = os.Getenv("TEST_EMAIL_RECIPIENT")
	if cfg.TestEmailRecipient == "" {
		cfg.TestEmailRecipient = "medicine.notifier.test@example.com"
	}

	// VAPID material is optional: push sends simply fail at the transport
	// if the channel is enabled without keys.
	cfg.VAPIDPublicKey = os.Getenv("VAPID_PUBLIC_KEY")
	cfg.VAPIDPrivateKey = os.Getenv("VAPID_PRIVATE_KEY")
	cfg.VAPIDSubject = os.Getenv("VAPID_SUBJECT")

	return cfg, nil
}
