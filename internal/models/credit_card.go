package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditCard represents a credit card a transaction can be charged against
type CreditCard struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	BankName    string          `gorm:"type:varchar(100)" json:"bank_name"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"credit_limit"`
	ClosingDay  int             `gorm:"not null;default:1" json:"closing_day"`
	DueDay      int             `gorm:"not null;default:10" json:"due_day"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for CreditCard
func (cc *CreditCard) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == uuid.Nil {
		cc.ID = uuid.New()
	}
	if cc.ClosingDay == 0 {
		cc.ClosingDay = 1
	}
	if cc.DueDay == 0 {
		cc.DueDay = 10
	}

	now := time.Now()
	if cc.CreatedAt.IsZero() {
		cc.CreatedAt = now
	}
	if cc.UpdatedAt.IsZero() {
		cc.UpdatedAt = now
	}

	return cc.Validate()
}

// Validate validates the credit card fields
func (cc *CreditCard) Validate() error {
	if cc.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if cc.Name == "" {
		return errors.New("credit card name is required")
	}
	if cc.CreditLimit.IsNegative() {
		return errors.New("credit limit cannot be negative")
	}
	if !validBillingDay(&cc.ClosingDay) || !validBillingDay(&cc.DueDay) {
		return ErrInvalidBillingDay
	}
	return nil
}

// TableName returns the table name for CreditCard
func (cc *CreditCard) TableName() string {
	return "credit_cards"
}
