package dto

import (
	"personal-finance/internal/models"
)

// Transaction Request DTOs

// TransactionRequest is the transaction entry form as submitted by the client.
// Required fields and the amount are checked by the form itself so the user gets
// the form's own notification; only shape constraints live here.
type TransactionRequest struct {
	Type        string `json:"type" form:"type" validate:"omitempty,direction"`
	Amount      string `json:"amount" form:"amount" validate:"max=32"`
	Description string `json:"description" form:"description" validate:"max=255"`
	AccountID   string `json:"account_id" form:"account_id" validate:"max=64"`
	CategoryID  string `json:"category_id" form:"category_id" validate:"max=64"`
	Date        string `json:"date" form:"date" validate:"max=32"`
	FormID      string `json:"form_id" form:"form_id" validate:"max=64"`
}

// ToDraft converts the request into a form draft
func (r TransactionRequest) ToDraft() models.TransactionDraft {
	return models.TransactionDraft{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Date:        r.Date,
	}
}

// Transaction Response DTOs

// Notification is a user-facing message emitted while handling a request
type Notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SubmitTransactionResponse is returned after a successful submission
type SubmitTransactionResponse struct {
	Transaction   *models.Transaction `json:"transaction"`
	Notifications []Notification      `json:"notifications"`
}

// ListTransactionsResponse lists the user's latest transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// FundingTargetsResponse lists every account and credit card a transaction can use
type FundingTargetsResponse struct {
	FundingTargets []models.FundingTarget `json:"funding_targets"`
}

// TransactionFormResponse is the initial state of the transaction entry form
type TransactionFormResponse struct {
	FundingTargets    []models.FundingTarget  `json:"funding_targets"`
	Categories        []models.Category       `json:"categories"`
	CategoriesLoading bool                    `json:"categories_loading"`
	Draft             models.TransactionDraft `json:"draft"`
}
