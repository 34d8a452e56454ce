package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig
	Stripe StripeConfig
	Email  EmailConfig
}

type ServerConfig struct {
	Port           string
	BaseURL        string
	AllowedOrigins []string
	Debug          bool
	LogPath        string
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	Recipient      string
}

// Load reads configuration from environment variables. Call godotenv.Load
// first if a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
			Debug:          getBool("DEBUG", false),
			LogPath:        os.Getenv("LOG_PATH"),
		},
		Stripe: StripeConfig{
			SecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
			PublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		},
		Email: EmailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromEmail:      os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:       getEnv("SENDGRID_FROM_NAME", "Guitar Academy"),
			Recipient:      os.Getenv("CONTACT_RECIPIENT_EMAIL"),
		},
	}

	if cfg.Stripe.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY not set")
	}
	if cfg.Email.SendGridAPIKey != "" && cfg.Email.Recipient == "" {
		return nil, fmt.Errorf("CONTACT_RECIPIENT_EMAIL not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
