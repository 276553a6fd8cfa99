package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"transaction-insights/internal/database"
	"transaction-insights/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInsightRepository(t *testing.T) {
	suite.Run(t, new(InsightRepositorySuite))
}

type InsightRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo InsightRepositoryInterface
	ctx  context.Context
}

func (s *InsightRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInsightRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *InsightRepositorySuite) TestRun_ScopedToAccount() {
	mine := uuid.New()
	other := uuid.New()
	database.CreateTestTransaction(s.T(), s.db, mine, models.TransactionTypeCredit, 500, time.Now().UTC())
	database.CreateTestTransaction(s.T(), s.db, mine, models.TransactionTypeDebit, 200, time.Now().UTC())
	database.CreateTestTransaction(s.T(), s.db, other, models.TransactionTypeDebit, 999, time.Now().UTC())

	rows, err := s.repo.Run(s.ctx, models.Query{
		Name: "sum",
		SQL:  "SELECT COUNT(*) AS n, SUM(amount) AS total FROM transactions WHERE account_id = ?",
		Args: []interface{}{mine},
	})
	s.NoError(err)
	s.Len(rows, 1)

	total, ok, err := rows[0].Decimal("total")
	s.NoError(err)
	s.True(ok)
	s.Equal("700", total.String())
}

func (s *InsightRepositorySuite) TestRun_EmptyResultIsEmptySlice() {
	rows, err := s.repo.Run(s.ctx, models.Query{
		SQL:  "SELECT amount FROM transactions WHERE account_id = ?",
		Args: []interface{}{uuid.New()},
	})
	s.NoError(err)
	s.NotNil(rows)
	s.Empty(rows)
}

func (s *InsightRepositorySuite) TestRun_InvalidSQLIsDatabaseError() {
	_, err := s.repo.Run(s.ctx, models.Query{SQL: "SELECT nope FROM missing_table"})
	s.Error(err)
	s.Contains(err.Error(), "database error:")
}

// Postgres dialect over sqlmock: placeholders are rewritten and values are
// sent as bound arguments.
func (s *InsightRepositorySuite) TestRun_PostgresBindsArguments() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	accountID := uuid.New()
	mock.ExpectQuery(`SELECT balance_after, currency FROM transactions WHERE account_id = \$1 LIMIT \$2`).
		WithArgs(accountID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"balance_after", "currency"}).AddRow("15000.50", []byte("NGN")))

	repo := NewInsightRepository(gdb)
	rows, err := repo.Run(s.ctx, models.Query{
		SQL:  "SELECT balance_after, currency FROM transactions WHERE account_id = ? LIMIT ?",
		Args: []interface{}{accountID, 1},
	})
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal("NGN", rows[0]["currency"])
	s.Equal("15000.50", rows[0].String("balance_after"))
	s.NoError(mock.ExpectationsWereMet())
}

func (s *InsightRepositorySuite) TestRun_PostgresFailureWrapped() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	_, err = NewInsightRepository(gdb).Run(s.ctx, models.Query{SQL: "SELECT 1 WHERE account_id = ?", Args: []interface{}{uuid.New()}})
	s.Error(err)
	s.Equal("database error: connection reset", err.Error())
}

func (s *InsightRepositorySuite) TestRun_NumericColumnsStayExact() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	columns := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("total_credit").OfType("NUMERIC", ""),
		sqlmock.NewColumn("total_debit").OfType("NUMERIC", ""),
		sqlmock.NewColumn("currency").OfType("VARCHAR", ""),
	).AddRow("123456789012.35", []byte("15000.50"), "NGN")

	mock.ExpectQuery(`SELECT`).WillReturnRows(columns)

	rows, err := NewInsightRepository(gdb).Run(s.ctx, models.Query{
		SQL:  "SELECT total_credit, total_debit, currency FROM totals WHERE account_id = ?",
		Args: []interface{}{uuid.New()},
	})
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("123456789012.35", rows[0]["total_credit"])
	s.Equal("15000.50", rows[0]["total_debit"])
	s.Equal("NGN", rows[0]["currency"])
	s.NoError(mock.ExpectationsWereMet())
}

func (s *InsightRepositorySuite) TestRun_NullNumericStaysNull() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRowsWithColumnDefinition(sqlmock.NewColumn("balance_after").OfType("NUMERIC", "")).AddRow(nil),
	)

	rows, err := NewInsightRepository(gdb).Run(s.ctx, models.Query{SQL: "SELECT balance_after FROM t WHERE account_id = ?", Args: []interface{}{uuid.New()}})
	s.Require().NoError(err)
	s.Nil(rows[0]["balance_after"])
}
