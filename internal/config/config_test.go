package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gpt-4", cfg.LLM.Model)
	assert.Equal(t, "Naira", cfg.LLM.DefaultCurrency)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.False(t, cfg.Server.TrustProxy)
	assert.False(t, cfg.Security.AuthEnabled())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_MAX_CONNECTIONS", "3")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, 3, cfg.Database.MaxConnections)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "/srv/migrations", cfg.Database.MigrationsPath)
	assert.True(t, cfg.Server.TrustProxy)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("LLM_TIMEOUT", "forever")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("AUTO_MIGRATE", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required")
}

func TestLoad_JWTPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	t.Setenv("AUTH_JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pemBytes))

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Security.AuthEnabled())
	assert.Equal(t, key.PublicKey.N, cfg.Security.JWTPublicKey.N)
}

func TestLoad_InvalidJWTPublicKey(t *testing.T) {
	t.Setenv("AUTH_JWT_PUBLIC_KEY", "not-base64!!")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", cfg.URL())
}
