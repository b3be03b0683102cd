package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-storefront-api/internal/notifications/email"
)

// Config carries environment-driven settings shared by the API and worker
// processes.
type Config struct {
	Port              string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
	SMTP              email.Config
}

// SMTPConfigured reports whether an SMTP relay was provided. Without one,
// notifications go to the log.
func (c Config) SMTPConfigured() bool {
	return c.SMTP.Host != ""
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		SMTP: email.Config{
			Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:     587,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envDefault("SMTP_FROM", "orders@storefront.local"),
		},
	}
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return Config{}, fmt.Errorf("SMTP_PORT must be a positive integer")
		}
		cfg.SMTP.Port = port
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
