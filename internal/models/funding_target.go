package models

import "github.com/google/uuid"

const (
	FundingKindAccount    = "account"
	FundingKindCreditCard = "credit_card"
)

// FundingTarget is a display-ready account or credit card a transaction can be charged against.
// It is derived from Account and CreditCard rows and never persisted.
type FundingTarget struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	DisplayIcon string    `json:"display_icon"`
	BankName    string    `json:"bank_name,omitempty"`
	AccountType string    `json:"account_type,omitempty"`
}

// IsValidFundingKind checks if the kind names a funding source collection
func IsValidFundingKind(kind string) bool {
	return kind == FundingKindAccount || kind == FundingKindCreditCard
}
