package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort      = "3000"
	defaultAssetRoot = "web/static"
)

// DefaultPortEnv lists the variables consulted for the listen port, in order.
var DefaultPortEnv = []string{"HTTP_PORT", "PORT"}

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Session  SessionConfig
	Contact  ContactConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr      string
	Port      string
	PortEnv   []string
	AssetRoot string
}

// DatabaseConfig contains the optional contact inbox connection settings.
type DatabaseConfig struct {
	URL             string
	UseMock         bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Enabled reports whether submissions should be written to a database.
func (c DatabaseConfig) Enabled() bool {
	return c.UseMock || strings.TrimSpace(c.URL) != ""
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// SessionConfig controls the visitor session cookie.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// ContactConfig holds credentials consumed only by the contact recorder.
type ContactConfig struct {
	EmailAPIKey string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	portEnv := append([]string(nil), DefaultPortEnv...)
	candidates := make([]string, 0, len(portEnv)+1)
	for _, key := range portEnv {
		candidates = append(candidates, os.Getenv(key))
	}
	candidates = append(candidates, defaultPort)
	port := strings.TrimSpace(firstNonEmpty(candidates...))

	cfg.Server = ServerConfig{
		Port:      port,
		PortEnv:   portEnv,
		AssetRoot: firstNonEmpty(os.Getenv("ASSET_ROOT"), defaultAssetRoot),
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			net.JoinHostPort("", port),
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 2),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 10),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 5*time.Minute),
	}

	cfg.Logging = LoggingConfig{
		Level:  firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
		Format: firstNonEmpty(os.Getenv("LOG_FORMAT"), "text"),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 24*time.Hour),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "moodquote_session"),
		CookieDomain: strings.TrimSpace(os.Getenv("SESSION_COOKIE_DOMAIN")),
		CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
	}

	cfg.Contact = ContactConfig{
		EmailAPIKey: strings.TrimSpace(os.Getenv("EMAIL_API_KEY")),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if strings.TrimSpace(os.Getenv("SERVER_ADDR")) == "" {
		if _, err := strconv.ParseUint(cfg.Server.Port, 10, 16); err != nil {
			return Config{}, fmt.Errorf("invalid port %q: %w", cfg.Server.Port, err)
		}
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}
