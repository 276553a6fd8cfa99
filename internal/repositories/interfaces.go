package repositories

import (
	"context"

	"transaction-insights/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface covers the write paths used by development seeding.
type TransactionRepositoryInterface interface {
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
	GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*models.Transaction, error)
}

// InsightRepositoryInterface executes read-only insight queries.
type InsightRepositoryInterface interface {
	Run(ctx context.Context, query models.Query) ([]models.Row, error)
}
