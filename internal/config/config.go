package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Security SecurityConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	// TrustProxy honours X-Forwarded-For from private or loopback peers.
	TrustProxy       bool
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogQueries      bool
	// AutoMigrate applies MigrationsPath at startup; AutoMigrate in gorm is
	// only the fallback when that fails.
	AutoMigrate    bool
	MigrationsPath string
}

type LLMConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	Timeout         time.Duration
	DefaultCurrency string

	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	BreakerHalfOpenSucc int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	// JWTPublicKey is nil when bearer-token account scoping is disabled.
	JWTPublicKey *rsa.PublicKey
	JWTIssuer    string
}

type LogConfig struct {
	Level slog.Level
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 90*time.Second),
			TrustProxy:   getBoolEnv("TRUST_PROXY", false),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "insights_user"),
			Password:        getEnv("DB_PASSWORD", "insights_password"),
			Name:            getEnv("DB_NAME", "insights_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			LogQueries:      getBoolEnv("DB_LOG_QUERIES", false),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
		LLM: LLMConfig{
			APIKey:              os.Getenv("OPENAI_API_KEY"),
			Model:               getEnv("OPENAI_MODEL", "gpt-4"),
			BaseURL:             os.Getenv("OPENAI_BASE_URL"),
			Timeout:             getDurationEnv("LLM_TIMEOUT", 60*time.Second),
			DefaultCurrency:     getEnv("DEFAULT_CURRENCY", "Naira"),
			BreakerMaxFailures:  getIntEnv("LLM_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("LLM_BREAKER_RESET_TIMEOUT", 30*time.Second),
			BreakerHalfOpenSucc: getIntEnv("LLM_BREAKER_HALF_OPEN_SUCCESSES", 1),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			JWTIssuer:          getEnv("AUTH_JWT_ISSUER", ""),
		},
		Log: LogConfig{
			Level: parseLogLevel(getEnv("LOG_LEVEL", "info")),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	publicKey, err := loadJWTPublicKey(os.Getenv("AUTH_JWT_PUBLIC_KEY"))
	if err != nil {
		return nil, fmt.Errorf("failed to load AUTH_JWT_PUBLIC_KEY: %w", err)
	}
	config.Security.JWTPublicKey = publicKey

	return config, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var problems []string
	if c.LLM.APIKey == "" {
		problems = append(problems, "OPENAI_API_KEY is required")
	}
	if c.LLM.Model == "" {
		problems = append(problems, "OPENAI_MODEL must not be empty")
	}
	if c.Database.Name == "" {
		problems = append(problems, "DB_NAME must not be empty")
	}
	if c.Security.RateLimitPerSecond <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_SECOND must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in URL form, as expected by lib/pq and golang-migrate.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *SecurityConfig) AuthEnabled() bool {
	return c.JWTPublicKey != nil
}

func (c *Config) Address() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// lookup returns the parsed value of key, or fallback when the variable is
// unset or does not parse.
func lookup[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring unparsable setting", "key", key, "value", raw)
		return fallback
	}
	return v
}

func getEnv(key, fallback string) string {
	return lookup(key, fallback, func(s string) (string, error) { return s, nil })
}

func getIntEnv(key string, fallback int) int {
	return lookup(key, fallback, strconv.Atoi)
}

func getBoolEnv(key string, fallback bool) bool {
	return lookup(key, fallback, strconv.ParseBool)
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	return lookup(key, fallback, time.ParseDuration)
}

func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// loadCORSAllowOrigins splits CORS_ALLOW_ORIGINS on commas. Unset means any
// origin, which is only warned about in production.
func (c *Config) loadCORSAllowOrigins() []string {
	raw := os.Getenv("CORS_ALLOW_ORIGINS")
	if raw == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing any origin")
		}
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// loadJWTPublicKey decodes a base64-encoded PEM public key. An empty value disables auth.
func loadJWTPublicKey(publicKeyB64 string) (*rsa.PublicKey, error) {
	if publicKeyB64 == "" {
		return nil, nil
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	return ParseRSAPublicKey(publicKeyBytes)
}

// ParseRSAPublicKey loads an RSA public key from PEM format
func ParseRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
