package repositories

import (
	"context"
	"errors"
	"fmt"

	"personal-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrCreditCardNotFound = errors.New("credit card not found")
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListActiveByUser retrieves the user's active accounts in creation order
func (r *accountRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").Order("name ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository
func NewCreditCardRepository(db *gorm.DB) CreditCardRepositoryInterface {
	return &creditCardRepository{db: db}
}

// GetByID retrieves a credit card by ID
func (r *creditCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CreditCard, error) {
	var card models.CreditCard
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreditCardNotFound
		}
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return &card, nil
}

// ListActiveByUser retrieves the user's active credit cards in creation order
func (r *creditCardRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").Order("name ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get credit cards for user: %w", err)
	}
	return cards, nil
}
