package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"transaction-insights/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// readiness polling; tests shorten these
var (
	readyAttempts = 30
	readyInterval = 2 * time.Second
)

// MigrationRunner drives golang-migrate over a dedicated *sql.DB.
type MigrationRunner struct {
	db  *sql.DB
	dir string
}

func NewMigrationRunner(db *sql.DB, dir string) *MigrationRunner {
	return &MigrationRunner{db: db, dir: dir}
}

// WaitForDatabase pings until the server answers, ctx ends, or
// readyAttempts pings have failed.
func (r *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= readyAttempts; attempt++ {
		if lastErr = r.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		slog.Warn("database not ready", "attempt", attempt, "of", readyAttempts, "error", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyInterval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", readyAttempts, lastErr)
}

func (r *MigrationRunner) open() (*migrate.Migrate, error) {
	abs, err := filepath.Abs(r.dir)
	if err != nil {
		return nil, fmt.Errorf("resolve migrations dir: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("migrations directory not found at %s", r.dir)
	}

	driver, err := postgres.WithInstance(r.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+abs, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	return m, nil
}

// Up applies every pending migration and returns the resulting version.
// A dirty version left by a crashed run is forced clean first.
func (r *MigrationRunner) Up() (uint, error) {
	m, err := r.open()
	if err != nil {
		return 0, err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return 0, fmt.Errorf("read migration version: %w", err)
	case dirty:
		slog.Warn("forcing dirty migration version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return 0, fmt.Errorf("force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("migrations applied", "dir", r.dir, "version", version)
	return version, nil
}

// Down reverts the last steps migrations.
func (r *MigrationRunner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	m, err := r.open()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back %d migrations: %w", steps, err)
	}
	slog.Info("migrations rolled back", "steps", steps)
	return nil
}

// Version reports the applied version. migrate.ErrNilVersion means none.
func (r *MigrationRunner) Version() (uint, bool, error) {
	m, err := r.open()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// MigrateOnStartup runs Up against a short-lived connection when
// cfg.AutoMigrate is set.
func MigrateOnStartup(ctx context.Context, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		return nil
	}

	sqlDB, err := OpenSQL(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	runner := NewMigrationRunner(sqlDB, cfg.MigrationsPath)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}
	_, err = runner.Up()
	return err
}
