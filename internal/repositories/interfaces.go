package repositories

import (
	"context"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]models.Category, error)
	ExistsByName(ctx context.Context, userID uuid.UUID, name, direction string) (bool, error)
	Deactivate(ctx context.Context, userID, id uuid.UUID) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
}

// CreditCardRepositoryInterface defines the contract for credit card repository operations
type CreditCardRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CreditCard, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.CreditCard, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error)
}
