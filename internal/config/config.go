package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-server/internal/util"
)

const (
	StoreSheet    = "sheet"
	StorePostgres = "postgres"
)

const (
	TransportAuto = "auto"
	TransportAPI  = "api"
	TransportSMTP = "smtp"
	TransportNone = "none"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`

	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	GoogleScriptURL string `env:"GOOGLE_SCRIPT_URL"`
	MyEmail         string `env:"MY_EMAIL"`

	MailTransport string `env:"MAIL_TRANSPORT" envDefault:"auto"`
	BrevoAPIKey   string `env:"BREVO_API_KEY"`
	BrevoSMTPKey  string `env:"BREVO_SMTP_KEY"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp-relay.brevo.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername  string `env:"SMTP_USERNAME"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"web"`
	ContentFile string `env:"CONTENT_FILE"`

	ContactStore string `env:"CONTACT_STORE" envDefault:"sheet"`
	DatabaseURL  string `env:"DATABASE_URL"`

	RedisURL               string `env:"REDIS_URL"`
	ContactRateLimitPerMin int    `env:"CONTACT_RATE_LIMIT_PER_MIN" envDefault:"0"`

	UpstreamTimeoutSeconds int `env:"UPSTREAM_TIMEOUT_SECONDS" envDefault:"10"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction enables HSTS on the static site.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func (c *Config) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutSeconds <= 0 {
		return DefaultUpstreamTimeout
	}
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// SMTPSecret returns the SMTP password, falling back to the Brevo SMTP key.
func (c *Config) SMTPSecret() string {
	if c.SMTPPassword != "" {
		return c.SMTPPassword
	}
	return c.BrevoSMTPKey
}

// SMTPUser returns the SMTP login, which defaults to the sender mailbox.
func (c *Config) SMTPUser() string {
	if c.SMTPUsername != "" {
		return c.SMTPUsername
	}
	return c.MyEmail
}

// ResolvedMailTransport picks the concrete transport for MAIL_TRANSPORT=auto:
// the vendor API when an API key is present, SMTP when an SMTP secret is
// present, and none otherwise.
func (c *Config) ResolvedMailTransport() string {
	if c.MailTransport != TransportAuto && c.MailTransport != "" {
		return c.MailTransport
	}
	switch {
	case c.BrevoAPIKey != "":
		return TransportAPI
	case c.SMTPSecret() != "":
		return TransportSMTP
	default:
		return TransportNone
	}
}

func (c *Config) AdminConfigured() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}

func (c *Config) Validate() error {
	if c.AdminPasswordHash != "" {
		if !strings.HasPrefix(c.AdminPasswordHash, "$2a$") &&
			!strings.HasPrefix(c.AdminPasswordHash, "$2b$") &&
			!strings.HasPrefix(c.AdminPasswordHash, "$2y$") {
			return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash (generate with: portfolioctl hash-password <password>)")
		}
	}

	if c.GoogleScriptURL != "" && !util.IsValidHTTPURL(c.GoogleScriptURL) {
		return fmt.Errorf("GOOGLE_SCRIPT_URL must be an absolute http(s) URL")
	}

	switch c.ContactStore {
	case StoreSheet:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CONTACT_STORE=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown CONTACT_STORE %q (want %s or %s)", c.ContactStore, StoreSheet, StorePostgres)
	}

	switch c.ResolvedMailTransport() {
	case TransportAPI:
		if c.BrevoAPIKey == "" {
			return fmt.Errorf("BREVO_API_KEY is required when MAIL_TRANSPORT=%s", TransportAPI)
		}
	case TransportSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when MAIL_TRANSPORT=%s", TransportSMTP)
		}
	case TransportNone:
	default:
		return fmt.Errorf("unknown MAIL_TRANSPORT %q", c.MailTransport)
	}

	if c.ContactRateLimitPerMin < 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT_PER_MIN must not be negative")
	}

	return nil
}

// LogSummary reports which secrets and endpoints are configured without
// printing their values.
func (c *Config) LogSummary() {
	log.Info().
		Str("admin_password", yesNo(c.AdminConfigured())).
		Str("mail_transport", c.ResolvedMailTransport()).
		Str("sender", yesNo(c.MyEmail != "")).
		Str("google_sheets", yesNo(c.GoogleScriptURL != "")).
		Str("contact_store", c.ContactStore).
		Msg("configuration loaded")

	if !c.AdminConfigured() {
		log.Warn().Msg("ADMIN_PASSWORD is empty: every admin login will be rejected")
	}
	if c.ContactStore == StoreSheet && c.GoogleScriptURL == "" {
		log.Warn().Msg("GOOGLE_SCRIPT_URL is empty: contact submissions will fail")
	}
	if c.ResolvedMailTransport() != TransportNone && c.MyEmail == "" {
		log.Warn().Msg("MY_EMAIL is empty: notification emails have no recipient")
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ContactStore = strings.ToLower(strings.TrimSpace(cfg.ContactStore))
	cfg.MailTransport = strings.ToLower(strings.TrimSpace(cfg.MailTransport))
	return &cfg, nil
}
