package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"

	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"

	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"

	// DateLayout is the ISO calendar date format used for transaction dates
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrInvalidRecurrence        = errors.New("invalid recurrence frequency")
	ErrInvalidFundingKind       = errors.New("invalid funding kind")
)

// Transaction is a persisted income, expense or transfer record
type Transaction struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	FundingKind         string          `gorm:"type:varchar(20);not null;default:'account'" json:"funding_kind"`
	CategoryID          *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Type                string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Date                time.Time       `gorm:"type:date;not null;index" json:"date"`
	Status              string          `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Tags                StringList      `gorm:"type:text" json:"tags,omitempty"`
	ReceiptURL          string          `gorm:"type:text" json:"receipt_url,omitempty"`
	RecurrenceFrequency *string         `gorm:"type:varchar(10)" json:"recurrence_frequency,omitempty"`
	RecurrenceEndDate   *time.Time      `gorm:"type:date" json:"recurrence_end_date,omitempty"`
	TransferAccountID   *uuid.UUID      `gorm:"type:uuid" json:"transfer_account_id,omitempty"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}
	if t.FundingKind == "" {
		t.FundingKind = FundingKindAccount
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidFundingKind(t.FundingKind) {
		return ErrInvalidFundingKind
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	if t.RecurrenceFrequency != nil && !IsValidRecurrence(*t.RecurrenceFrequency) {
		return ErrInvalidRecurrence
	}

	if t.Type == TransactionTypeTransfer && t.TransferAccountID == nil {
		return errors.New("transfer requires a destination account")
	}

	return nil
}

// IsCompleted returns true if the transaction is completed
func (t *Transaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsValidRecurrence checks if the recurrence frequency is valid
func IsValidRecurrence(frequency string) bool {
	switch frequency {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}
