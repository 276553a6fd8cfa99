package database

import (
	"testing"
	"time"

	"transaction-insights/internal/config"
	"transaction-insights/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every new :memory: connection is a fresh empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestTransaction inserts one transaction for accountID.
func CreateTestTransaction(t *testing.T, db *DB, accountID uuid.UUID, txType string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		AccountID:       accountID,
		TransactionType: txType,
		Amount:          decimal.NewFromFloat(amount),
		Currency:        models.DefaultCurrency,
		Date:            date,
		Narration:       "test " + txType,
		Category:        "transfer",
		BankName:        "Test Bank",
		BalanceAfter:    decimal.NewFromFloat(amount),
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup table transactions: %v", err)
	}
}
