package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is everything the process needs from its environment. It is built once
// at start-up and handed to the constructors that need it.
type Config struct {
	Driver      string
	DSN         string
	LogLevel    string
	AutoMigrate bool

	Port           string
	AllowedOrigins []string

	Currency       string
	DigestSchedule string
	Twilio         TwilioConfig
}

// TwilioConfig holds the credentials of the SMS digest. An empty AccountSID disables SMS.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.From != "" && t.To != ""
}

// Load reads a local .env file, if any, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := Config{
		Driver:         getenv("DB_DRIVER", "postgres"),
		DSN:            os.Getenv("DB_URL"),
		LogLevel:       getenv("DB_LOG_LEVEL", "warn"),
		AutoMigrate:    parseBool(os.Getenv("DB_AUTO_MIGRATE"), true),
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		Currency:       getenv("CURRENCY", "USD"),
		DigestSchedule: getenv("DIGEST_CRON", "0 9 * * *"),
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			From:       os.Getenv("TWILIO_PHONE_NUMBER"),
			To:         os.Getenv("DIGEST_SMS_TO"),
		},
	}
	if cfg.DSN == "" && cfg.Driver == "postgres" {
		cfg.DSN = postgresDSN(
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "investment_manager"),
		)
	}
	if cfg.DSN == "" && cfg.Driver == "sqlite" {
		cfg.DSN = "investment_manager.db"
	}
	return cfg
}

func postgresDSN(host, port, user, password, name string) string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, name)
	if password != "" {
		dsn += " password=" + password
	}
	return dsn
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBool(v string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return fallback
	case "false", "0", "no":
		return false
	default:
		return true
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
