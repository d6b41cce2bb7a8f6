package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Transactional email
	EmailProvider  string // sendgrid, ses, or stub
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string
	AdminEmail     string
	AWSRegion      string

	// Zoom (video-conferencing provider)
	ZoomClientID     string
	ZoomClientSecret string
	ZoomAccountID    string
	ZoomBaseURL      string
	ZoomTokenURL     string

	// Google Calendar (service account)
	GoogleClientEmail string
	GooglePrivateKey  string
	GoogleCalendarID  string

	DefaultTimezone string
	ProviderTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		EmailProvider:  strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "sendgrid"))),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", ""),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "TopEdge AI"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),

		ZoomClientID:     getEnv("ZOOM_CLIENT_ID", ""),
		ZoomClientSecret: getEnv("ZOOM_CLIENT_SECRET", ""),
		ZoomAccountID:    getEnv("ZOOM_ACCOUNT_ID", ""),
		ZoomBaseURL:      getEnv("ZOOM_BASE_URL", "https://api.zoom.us/v2"),
		ZoomTokenURL:     getEnv("ZOOM_TOKEN_URL", "https://zoom.us/oauth/token"),

		GoogleClientEmail: getEnv("GOOGLE_CLIENT_EMAIL", ""),
		GooglePrivateKey:  normalizePrivateKey(getEnv("GOOGLE_PRIVATE_KEY", "")),
		GoogleCalendarID:  getEnv("GOOGLE_CALENDAR_ID", ""),

		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Asia/Kolkata"),
		ProviderTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 20*time.Second),
	}
}

// Validate reports every missing required secret at once so a misconfigured
// deployment fails at startup instead of on the first booking request.
func (c *Config) Validate() error {
	var missing []string

	switch c.EmailProvider {
	case "sendgrid":
		if c.SendGridAPIKey == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
	case "ses", "stub":
	default:
		return apperrors.New(apperrors.KindConfiguration,
			fmt.Sprintf("config: unknown EMAIL_PROVIDER %q (want sendgrid, ses, or stub)", c.EmailProvider))
	}
	if c.EmailFrom == "" && c.EmailProvider != "stub" {
		missing = append(missing, "EMAIL_FROM")
	}
	if c.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}

	if c.ZoomClientID == "" {
		missing = append(missing, "ZOOM_CLIENT_ID")
	}
	if c.ZoomClientSecret == "" {
		missing = append(missing, "ZOOM_CLIENT_SECRET")
	}

	if c.GoogleClientEmail == "" {
		missing = append(missing, "GOOGLE_CLIENT_EMAIL")
	}
	if c.GooglePrivateKey == "" {
		missing = append(missing, "GOOGLE_PRIVATE_KEY")
	}
	if c.GoogleCalendarID == "" {
		missing = append(missing, "GOOGLE_CALENDAR_ID")
	}

	if len(missing) > 0 {
		return apperrors.New(apperrors.KindConfiguration,
			"config: missing required environment variables: "+strings.Join(missing, ", "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizePrivateKey converts the escaped newlines most secret managers
// store PEM keys with back into real newlines.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
