package services

import (
	"context"
	"time"

	"personal-finance/internal/events"
	"personal-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryStore exposes the user's categories and creates new ones
type CategoryStore interface {
	Read(ctx context.Context, userID uuid.UUID) (categories []models.Category, loading bool, err error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
}

// AccountStore exposes the user's accounts
type AccountStore interface {
	Read(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
}

// CreditCardStore exposes the user's credit cards
type CreditCardStore interface {
	Read(ctx context.Context, userID uuid.UUID) ([]models.CreditCard, error)
}

// TransactionInput is a validated draft ready to be persisted
type TransactionInput struct {
	UserID      uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Description string
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Status      string
	Receipt     *models.ReceiptFile
}

// TransactionStore persists transactions, optionally with a receipt attachment
type TransactionStore interface {
	Create(ctx context.Context, input TransactionInput) (*models.Transaction, error)
}

// Notifier is the user-facing notification channel
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ReceiptStorage saves receipt attachments and returns a reference URL.
// Delete removes an object previously returned by Save.
type ReceiptStorage interface {
	Save(ctx context.Context, userID uuid.UUID, file *models.ReceiptFile) (string, error)
	Delete(ctx context.Context, url string) error
}

// EventPublisher delivers domain events
type EventPublisher interface {
	Publish(ctx context.Context, msg *events.Message) error
}

// TransactionEntryServiceInterface drives the transaction entry workflow
type TransactionEntryServiceInterface interface {
	FundingTargets(ctx context.Context, userID uuid.UUID) ([]models.FundingTarget, error)
	Categories(ctx context.Context, userID uuid.UUID, direction string) ([]models.Category, bool, error)
	LoadForm(ctx context.Context, userID uuid.UUID, direction string) (*FormData, error)
	Submit(ctx context.Context, userID uuid.UUID, formID string, draft models.TransactionDraft, notifier Notifier) (*models.Transaction, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// CategoryPanelServiceInterface drives the category management panel
type CategoryPanelServiceInterface interface {
	Panel(ctx context.Context, userID uuid.UUID) (*CategoryPanelView, error)
	SelectSuggestion(ctx context.Context, userID uuid.UUID, name string) (*CategoryForm, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, form CategoryForm, notifier Notifier) (*models.Category, error)
	DeactivateCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// EntryLoggerInterface records workflow events for auditing
type EntryLoggerInterface interface {
	LogValidationFailed(ctx context.Context, userID uuid.UUID, reason string, fields []string)
	LogSubmissionStarted(ctx context.Context, userID uuid.UUID, direction string)
	LogSubmissionCompleted(ctx context.Context, userID, transactionID uuid.UUID, durationMs int64)
	LogSubmissionFailed(ctx context.Context, userID uuid.UUID, errorMsg string)
	LogCategoryCreated(ctx context.Context, userID, categoryID uuid.UUID, name string)
	LogCategoryDeactivated(ctx context.Context, userID, categoryID uuid.UUID)
}

// TokenServiceInterface verifies bearer tokens issued by the identity provider
type TokenServiceInterface interface {
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	IssueAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
}
