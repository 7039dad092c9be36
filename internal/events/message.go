package events

import (
	"encoding/json"
	"fmt"
	"time"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

const (
	TypeTransactionCreated = "transaction.created"
	TypeCategoryCreated    = "category.created"
)

// Message is the envelope published for domain events
type Message struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	UserID     uuid.UUID       `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type transactionPayload struct {
	TransactionID uuid.UUID  `json:"transaction_id"`
	AccountID     uuid.UUID  `json:"account_id"`
	FundingKind   string     `json:"funding_kind"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Type          string     `json:"type"`
	Amount        string     `json:"amount"`
	Date          string     `json:"date"`
	HasReceipt    bool       `json:"has_receipt"`
}

type categoryPayload struct {
	CategoryID      uuid.UUID `json:"category_id"`
	Name            string    `json:"name"`
	TransactionType string    `json:"transaction_type"`
}

// NewTransactionCreated builds the event emitted after a transaction is stored
func NewTransactionCreated(tx *models.Transaction, now time.Time) (*Message, error) {
	return newMessage(TypeTransactionCreated, tx.UserID, now, transactionPayload{
		TransactionID: tx.ID,
		AccountID:     tx.AccountID,
		FundingKind:   tx.FundingKind,
		CategoryID:    tx.CategoryID,
		Type:          tx.Type,
		Amount:        tx.Amount.StringFixed(2),
		Date:          tx.Date.Format(models.DateLayout),
		HasReceipt:    tx.ReceiptURL != "",
	})
}

// NewCategoryCreated builds the event emitted after a category is stored
func NewCategoryCreated(category *models.Category, now time.Time) (*Message, error) {
	return newMessage(TypeCategoryCreated, category.UserID, now, categoryPayload{
		CategoryID:      category.ID,
		Name:            category.Name,
		TransactionType: category.TransactionType,
	})
}

func newMessage(eventType string, userID uuid.UUID, now time.Time, payload interface{}) (*Message, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &Message{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: now.UTC(),
		Payload:    body,
	}, nil
}

// ToJSON encodes the envelope
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON decodes an envelope
func MessageFromJSON(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
