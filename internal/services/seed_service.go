package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"transaction-insights/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultSeedCount = 100
	DefaultSeedDays  = 90
	MaxSeedCount     = 5000
	MaxSeedDays      = 730

	defaultOpeningBalance = 50000
)

var (
	ErrInvalidSeedRequest = errors.New("invalid seed request")
)

type SeedResult struct {
	AccountID    uuid.UUID       `json:"account_id"`
	Created      int             `json:"created"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	FinalBalance decimal.Decimal `json:"final_balance"`
}

type SeedService struct {
	repo      repositories.TransactionRepositoryInterface
	generator TransactionGeneratorInterface
	logger    SearchLoggerInterface
	metrics   MetricsRecorderInterface
	now       func() time.Time
}

func NewSeedService(
	repo repositories.TransactionRepositoryInterface,
	generator TransactionGeneratorInterface,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
) SeedServiceInterface {
	return &SeedService{
		repo:      repo,
		generator: generator,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// SeedAccount writes count fake transactions spread over the last days days.
// An account that already has history continues from its latest balance.
func (s *SeedService) SeedAccount(ctx context.Context, accountID uuid.UUID, count, days int) (*SeedResult, error) {
	if accountID == uuid.Nil {
		return nil, fmt.Errorf("%w: account id is required", ErrInvalidSeedRequest)
	}
	if count <= 0 || count > MaxSeedCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidSeedRequest, MaxSeedCount)
	}
	if days <= 0 || days > MaxSeedDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidSeedRequest, MaxSeedDays)
	}

	endDate := s.now().UTC()
	startDate := endDate.AddDate(0, 0, -days)
	openingBalance := decimal.NewFromInt(defaultOpeningBalance)

	latest, err := s.repo.GetLatestByAccountID(ctx, accountID)
	switch {
	case err == nil:
		openingBalance = latest.BalanceAfter
		if latest.Date.After(startDate) {
			startDate = latest.Date.Add(time.Second)
		}
	case !errors.Is(err, repositories.ErrTransactionNotFound):
		return nil, fmt.Errorf("failed to load latest transaction: %w", err)
	}

	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%w: account already has transactions up to now", ErrInvalidSeedRequest)
	}

	transactions := s.generator.GenerateTransactions(accountID, count, startDate, endDate, openingBalance)
	if err := s.repo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to store seeded transactions: %w", err)
	}

	finalBalance := openingBalance
	if len(transactions) > 0 {
		finalBalance = transactions[len(transactions)-1].BalanceAfter
	}

	s.logger.LogAccountSeeded(ctx, accountID, len(transactions))
	s.metrics.IncrementCounter(MetricAccountSeeded, nil)

	return &SeedResult{
		AccountID:    accountID,
		Created:      len(transactions),
		StartDate:    startDate,
		EndDate:      endDate,
		FinalBalance: finalBalance,
	}, nil
}

func (s *SeedService) ClearAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	if accountID == uuid.Nil {
		return 0, fmt.Errorf("%w: account id is required", ErrInvalidSeedRequest)
	}

	deleted, err := s.repo.DeleteByAccountID(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear account transactions: %w", err)
	}

	s.logger.LogAccountCleared(ctx, accountID, deleted)
	return deleted, nil
}
