package repositories

import (
	"context"
	"errors"
	"fmt"

	"transaction-insights/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// rows per INSERT when seeding
const createBatchSize = 200

// transactionRepository owns the few writes the service performs: seeding
// and clearing dev accounts. Insight reads go through InsightRepository.
type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) account(ctx context.Context, accountID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Transaction{}).Where("account_id = ?", accountID)
}

// CreateBatch inserts all rows or none.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&transactions, createBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("insert %d transactions: %w", len(transactions), err)
	}
	return nil
}

func (r *transactionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	res := r.account(ctx, accountID).Delete(&models.Transaction{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete transactions of %s: %w", accountID, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *transactionRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	if err := r.account(ctx, accountID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count transactions of %s: %w", accountID, err)
	}
	return n, nil
}

// GetLatestByAccountID returns the newest transaction by date, breaking ties
// on created_at. Its BalanceAfter is the account's current balance.
func (r *transactionRepository) GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Transaction, error) {
	var latest models.Transaction
	err := r.account(ctx, accountID).Order("date DESC").Order("created_at DESC").Take(&latest).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTransactionNotFound
	case err != nil:
		return nil, fmt.Errorf("latest transaction of %s: %w", accountID, err)
	}
	return &latest, nil
}
