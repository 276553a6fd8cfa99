package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-insights/internal/models"
	"transaction-insights/internal/repositories"
	"transaction-insights/internal/repositories/repository_mocks"
	"transaction-insights/internal/services"
	"transaction-insights/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SeedServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *repository_mocks.MockTransactionRepositoryInterface
	generator *service_mocks.MockTransactionGeneratorInterface
	logger    *service_mocks.MockSearchLoggerInterface
	metrics   *service_mocks.MockMetricsRecorderInterface
	service   services.SeedServiceInterface
	accountID uuid.UUID
	ctx       context.Context
}

func TestSeedServiceSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}

func (s *SeedServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.generator = service_mocks.NewMockTransactionGeneratorInterface(s.ctrl)
	s.logger = service_mocks.NewMockSearchLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewSeedService(s.repo, s.generator, s.logger, s.metrics)
	s.accountID = uuid.New()
	s.ctx = context.Background()
}

func (s *SeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SeedServiceTestSuite) batch(balances ...int64) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(balances))
	for _, balance := range balances {
		transactions = append(transactions, models.Transaction{
			AccountID:    s.accountID,
			BalanceAfter: decimal.NewFromInt(balance),
		})
	}
	return transactions
}

func (s *SeedServiceTestSuite) TestSeedNewAccount() {
	generated := s.batch(52000, 48500, 61000)

	s.repo.EXPECT().GetLatestByAccountID(s.ctx, s.accountID).Return(nil, repositories.ErrTransactionNotFound)
	s.generator.EXPECT().GenerateTransactions(s.accountID, 3, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ int, start, end time.Time, opening decimal.Decimal) []models.Transaction {
			s.True(opening.Equal(decimal.NewFromInt(50000)))
			s.WithinDuration(end.AddDate(0, 0, -30), start, time.Second)
			return generated
		})
	s.repo.EXPECT().CreateBatch(s.ctx, generated).Return(nil)
	s.logger.EXPECT().LogAccountSeeded(s.ctx, s.accountID, 3)
	s.metrics.EXPECT().IncrementCounter(services.MetricAccountSeeded, gomock.Nil())

	result, err := s.service.SeedAccount(s.ctx, s.accountID, 3, 30)
	s.Require().NoError(err)
	s.Equal(s.accountID, result.AccountID)
	s.Equal(3, result.Created)
	s.True(result.FinalBalance.Equal(decimal.NewFromInt(61000)))
	s.True(result.EndDate.After(result.StartDate))
}

func (s *SeedServiceTestSuite) TestSeedContinuesExistingHistory() {
	latest := &models.Transaction{
		AccountID:    s.accountID,
		BalanceAfter: decimal.RequireFromString("12345.67"),
		Date:         time.Now().UTC().Add(-48 * time.Hour),
	}

	s.repo.EXPECT().GetLatestByAccountID(s.ctx, s.accountID).Return(latest, nil)
	s.generator.EXPECT().GenerateTransactions(s.accountID, 10, latest.Date.Add(time.Second), gomock.Any(), latest.BalanceAfter).
		Return(s.batch(13000))
	s.repo.EXPECT().CreateBatch(s.ctx, gomock.Any()).Return(nil)
	s.logger.EXPECT().LogAccountSeeded(s.ctx, s.accountID, 1)
	s.metrics.EXPECT().IncrementCounter(services.MetricAccountSeeded, gomock.Nil())

	result, err := s.service.SeedAccount(s.ctx, s.accountID, 10, 90)
	s.Require().NoError(err)
	s.Equal(latest.Date.Add(time.Second), result.StartDate)
}

func (s *SeedServiceTestSuite) TestSeedRejectsInvalidRequests() {
	tests := []struct {
		name      string
		accountID uuid.UUID
		count     int
		days      int
	}{
		{name: "nil account", accountID: uuid.Nil, count: 10, days: 10},
		{name: "zero count", accountID: s.accountID, count: 0, days: 10},
		{name: "count too large", accountID: s.accountID, count: services.MaxSeedCount + 1, days: 10},
		{name: "zero days", accountID: s.accountID, count: 10, days: 0},
		{name: "days too large", accountID: s.accountID, count: 10, days: services.MaxSeedDays + 1},
	}

	for _, tt := range tests {
		_, err := s.service.SeedAccount(s.ctx, tt.accountID, tt.count, tt.days)
		s.ErrorIs(err, services.ErrInvalidSeedRequest, tt.name)
	}
}

func (s *SeedServiceTestSuite) TestSeedLookupFailure() {
	s.repo.EXPECT().GetLatestByAccountID(s.ctx, s.accountID).Return(nil, errors.New("connection refused"))

	_, err := s.service.SeedAccount(s.ctx, s.accountID, 10, 10)
	s.EqualError(err, "failed to load latest transaction: connection refused")
}

func (s *SeedServiceTestSuite) TestSeedStoreFailure() {
	s.repo.EXPECT().GetLatestByAccountID(s.ctx, s.accountID).Return(nil, repositories.ErrTransactionNotFound)
	s.generator.EXPECT().GenerateTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(s.batch(1))
	s.repo.EXPECT().CreateBatch(s.ctx, gomock.Any()).Return(errors.New("duplicate key"))

	_, err := s.service.SeedAccount(s.ctx, s.accountID, 1, 1)
	s.EqualError(err, "failed to store seeded transactions: duplicate key")
}

func (s *SeedServiceTestSuite) TestClearAccount() {
	s.repo.EXPECT().DeleteByAccountID(s.ctx, s.accountID).Return(int64(42), nil)
	s.logger.EXPECT().LogAccountCleared(s.ctx, s.accountID, int64(42))

	deleted, err := s.service.ClearAccount(s.ctx, s.accountID)
	s.NoError(err)
	s.Equal(int64(42), deleted)
}

func (s *SeedServiceTestSuite) TestClearAccountFailure() {
	s.repo.EXPECT().DeleteByAccountID(s.ctx, s.accountID).Return(int64(0), errors.New("timeout"))

	_, err := s.service.ClearAccount(s.ctx, s.accountID)
	s.EqualError(err, "failed to clear account transactions: timeout")

	_, err = s.service.ClearAccount(s.ctx, uuid.Nil)
	s.ErrorIs(err, services.ErrInvalidSeedRequest)
}
