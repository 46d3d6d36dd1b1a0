package config

import "time"

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 75 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database connection pool settings
const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 2
	DBConnMaxLifetime = 5 * time.Minute
)

const DBPingTimeout = 5 * time.Second

// Outbound calls to the spreadsheet script and the mail relay
const DefaultUpstreamTimeout = 10 * time.Second

// Startup check of the mail transport
const MailVerifyTimeout = 10 * time.Second

const ContactRateLimitWindow = time.Minute
