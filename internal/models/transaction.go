package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	DefaultCurrency = "NGN"
)

// maxCategoryLength matches the varchar(50) column.
const maxCategoryLength = 50

var (
	ErrMissingAccountID       = errors.New("account ID is required")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidCurrency        = errors.New("currency must be a 3-letter code")
	ErrCategoryTooLong        = errors.New("category code too long")
	ErrImmutableTransaction   = errors.New("transactions are immutable")
)

// Transaction is a bank transaction imported from an aggregator connection.
// Rows are written once by the ingesting system and only read afterwards.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID    string          `gorm:"type:varchar(100);index" json:"transaction_id"`
	AccountID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	MonoConnectionID string          `gorm:"type:varchar(100);index" json:"mono_connection_id,omitempty"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'NGN'" json:"currency"`
	Date             time.Time       `gorm:"not null;index" json:"date"`
	Narration        string          `gorm:"type:text" json:"narration"`
	Category         string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	TransactionType  string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	BankName         string          `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
	AccountNumber    string          `gorm:"type:varchar(20)" json:"account_number,omitempty"`
	FirstName        string          `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName         string          `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	BalanceAfter     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance_after"`
	CreatedAt        time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;index" json:"updated_at"`
}

// BeforeCreate fills ids, currency and timestamps that the caller left
// empty, then validates. Seeded history keeps its own dates.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.TransactionID == "" {
		t.TransactionID = GenerateTransactionReference()
	}
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	return t.Validate()
}

// BeforeUpdate rejects edits. Transactions are immutable after ingestion.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrImmutableTransaction
}

func (t *Transaction) Validate() error {
	switch {
	case t.AccountID == uuid.Nil:
		return ErrMissingAccountID
	case !IsValidTransactionType(t.TransactionType):
		return ErrInvalidTransactionType
	case !t.Amount.IsPositive():
		return ErrInvalidAmount
	case len(t.Currency) != 3:
		return ErrInvalidCurrency
	case len(t.Category) > maxCategoryLength:
		return ErrCategoryTooLong
	}
	return nil
}

func (t *Transaction) IsCredit() bool {
	return t.TransactionType == TransactionTypeCredit
}

func (t *Transaction) IsDebit() bool {
	return t.TransactionType == TransactionTypeDebit
}

// SignedAmount returns the amount as it moves the running balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType is case-sensitive; only "credit" and "debit" are stored.
func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeCredit || transactionType == TransactionTypeDebit
}

// GenerateTransactionReference returns a provider-style reference such as
// TXN-1a2b3c4d-20250301120000.
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().Format("20060102150405")
}
