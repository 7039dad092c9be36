package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCreditCard = "credit_card"
	AccountTypeWallet     = "wallet"
	AccountTypeInvestment = "investment"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameMissing = errors.New("account name is required")
	ErrInvalidBillingDay  = errors.New("billing day must be between 1 and 31")
)

// Account represents a funding source owned by a user (bank account, wallet, ...)
type Account struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string           `gorm:"type:varchar(100);not null" json:"name"`
	Type        string           `gorm:"type:varchar(20);not null" json:"type"`
	Balance     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	BankName    string           `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
	CreditLimit *decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit_limit,omitempty"`
	ClosingDay  *int             `json:"closing_day,omitempty"`
	DueDay      *int             `json:"due_day,omitempty"`
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return ErrAccountNameMissing
	}

	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	if !validBillingDay(a.ClosingDay) || !validBillingDay(a.DueDay) {
		return ErrInvalidBillingDay
	}

	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard, AccountTypeWallet, AccountTypeInvestment:
		return true
	default:
		return false
	}
}

func validBillingDay(day *int) bool {
	return day == nil || (*day >= 1 && *day <= 31)
}
