package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the web front-end needs from the environment.
// Persistence, auth and business rules live in the backend API; the only
// secrets here are cookie/JWT material and SMTP credentials.
type Config struct {
	ListenAddr     string
	BackendBaseURL string
	RequestTimeout time.Duration

	CookieSecret    string // HMAC key for flash + guest cookies
	SecureCookies   bool
	AuthCookieName  string
	AuthJWTSecret   string // shared with the auth provider, verify-only
	GuestCookieName string
	FlashCookieName string

	MailerDriver string // "smtp" or "mock"
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
}

func Load() (*Config, error) {
	// .env is a dev convenience; prod uses real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		BackendBaseURL:  strings.TrimRight(getEnv("BACKEND_BASE_URL", ""), "/"),
		RequestTimeout:  getDuration("BACKEND_TIMEOUT", 15*time.Second),
		CookieSecret:    strings.TrimSpace(os.Getenv("COOKIE_SECRET")),
		SecureCookies:   getBool("SECURE_COOKIES", false),
		AuthCookieName:  getEnv("AUTH_COOKIE_NAME", "nexa_session"),
		AuthJWTSecret:   strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
		GuestCookieName: getEnv("GUEST_COOKIE_NAME", "nexa_guest"),
		FlashCookieName: getEnv("FLASH_COOKIE_NAME", "nexa_flash"),
		MailerDriver:    getEnv("MAILER_DRIVER", "mock"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        getEnv("SMTP_FROM", "no-reply@localhost"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BackendBaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}

	if c.CookieSecret == "" {
		return fmt.Errorf("COOKIE_SECRET is required")
	}

	if c.AuthJWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}

	if c.MailerDriver != "smtp" && c.MailerDriver != "mock" {
		return fmt.Errorf("MAILER_DRIVER must be smtp or mock")
	}

	return nil
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return fallback
	}

	return v
}

func getBool(key string, fallback bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch raw {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return fallback
	}
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}
