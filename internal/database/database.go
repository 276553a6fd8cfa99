package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"transaction-insights/internal/config"
	"transaction-insights/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the request-path pool. Insight queries run raw SQL through it and
// seeding goes through the gorm model.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// lookupIndexes are the expression indexes from migration 000002 that gorm
// struct tags cannot declare. They are only created on the AutoMigrate path.
var lookupIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_date ON transactions(account_id, "date" DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_category ON transactions(account_id, LOWER(category))`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_bank ON transactions(account_id, LOWER(bank_name))`,
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	level := logger.Warn
	if cfg.LogQueries {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{DB: db, config: cfg}, nil
}

// OpenSQL opens a small lib/pq pool for the migration runner so schema
// changes never hold request connections.
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(2)
	return sqlDB, nil
}

// AutoMigrate creates the transactions table from the gorm model.
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Transaction{})
}

// ensureLookupIndexes is best effort. A missing index slows the insight
// queries but does not break them.
func (db *DB) ensureLookupIndexes() {
	for _, stmt := range lookupIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("lookup index not created", "statement", stmt, "error", err)
		}
	}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize connects and brings the schema up to date. When the SQL
// migrations cannot run, gorm AutoMigrate plus the lookup indexes is used
// instead.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := MigrateOnStartup(ctx, &cfg.Database); err != nil {
		slog.Warn("sql migrations failed, falling back to gorm AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		db.ensureLookupIndexes()
	}

	slog.Info("database ready", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}
