package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"personal-finance/internal/events"
	"personal-finance/internal/models"
	"personal-finance/internal/repositories"
	"personal-finance/internal/storage"

	"github.com/google/uuid"
)

type categoryStore struct {
	repo      repositories.CategoryRepositoryInterface
	publisher EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewCategoryStore creates a CategoryStore backed by the category repository
func NewCategoryStore(repo repositories.CategoryRepositoryInterface, publisher EventPublisher, logger *slog.Logger) CategoryStore {
	return &categoryStore{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Read returns the user's active categories. The repository answers synchronously so loading is always false.
func (s *categoryStore) Read(ctx context.Context, userID uuid.UUID) ([]models.Category, bool, error) {
	categories, err := s.repo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, false, nil
}

func (s *categoryStore) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	exists, err := s.repo.ExistsByName(ctx, category.UserID, category.Name, category.TransactionType)
	if err != nil {
		return nil, &StoreError{Message: MsgCategoryFailed, Err: err}
	}
	if exists {
		return nil, &StoreError{Message: MsgCategoryDuplicate, Err: ErrDuplicateCategory}
	}

	if category.ParentID != nil {
		if err := s.checkParent(ctx, category); err != nil {
			return nil, err
		}
	}

	if err := category.Validate(); err != nil {
		return nil, &StoreError{Message: MsgCategoryInvalidData, Err: err}
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrCategoryExists) {
			return nil, &StoreError{Message: MsgCategoryDuplicate, Err: ErrDuplicateCategory}
		}
		return nil, &StoreError{Message: MsgCategoryFailed, Err: err}
	}

	msg, err := events.NewCategoryCreated(category, s.now())
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish category event",
			slog.String("category_id", category.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return category, nil
}

// checkParent requires an owned, active, top-level parent of the same direction
func (s *categoryStore) checkParent(ctx context.Context, category *models.Category) error {
	parent, err := s.repo.GetByID(ctx, *category.ParentID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return &StoreError{Message: MsgInvalidParent, Err: ErrInvalidParentCategory}
		}
		return &StoreError{Message: MsgCategoryFailed, Err: err}
	}

	if parent.UserID != category.UserID || !parent.IsActive || parent.ParentID != nil ||
		!parent.Matches(category.TransactionType) {
		return &StoreError{Message: MsgInvalidParent, Err: ErrInvalidParentCategory}
	}
	return nil
}

type accountStore struct {
	repo repositories.AccountRepositoryInterface
}

// NewAccountStore creates an AccountStore backed by the account repository
func NewAccountStore(repo repositories.AccountRepositoryInterface) AccountStore {
	return &accountStore{repo: repo}
}

func (s *accountStore) Read(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

type creditCardStore struct {
	repo repositories.CreditCardRepositoryInterface
}

// NewCreditCardStore creates a CreditCardStore backed by the credit card repository
func NewCreditCardStore(repo repositories.CreditCardRepositoryInterface) CreditCardStore {
	return &creditCardStore{repo: repo}
}

func (s *creditCardStore) Read(ctx context.Context, userID uuid.UUID) ([]models.CreditCard, error) {
	cards, err := s.repo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return cards, nil
}

type transactionStore struct {
	transactions repositories.TransactionRepositoryInterface
	accounts     repositories.AccountRepositoryInterface
	cards        repositories.CreditCardRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	receipts     ReceiptStorage
	publisher    EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// NewTransactionStore creates a TransactionStore that checks references, stores the receipt and persists the row
func NewTransactionStore(
	transactions repositories.TransactionRepositoryInterface,
	accounts repositories.AccountRepositoryInterface,
	cards repositories.CreditCardRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	receipts ReceiptStorage,
	publisher EventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) TransactionStore {
	if now == nil {
		now = time.Now
	}
	return &transactionStore{
		transactions: transactions,
		accounts:     accounts,
		cards:        cards,
		categories:   categories,
		receipts:     receipts,
		publisher:    publisher,
		logger:       logger,
		now:          now,
	}
}

func (s *transactionStore) Create(ctx context.Context, input TransactionInput) (*models.Transaction, error) {
	fundingKind, err := s.resolveFunding(ctx, input.UserID, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(ctx, input); err != nil {
		return nil, err
	}

	var receiptURL string
	if input.Receipt != nil {
		receiptURL, err = s.receipts.Save(ctx, input.UserID, input.Receipt)
		if err != nil {
			if errors.Is(err, storage.ErrReceiptEmpty) || errors.Is(err, storage.ErrReceiptTooLarge) ||
				errors.Is(err, storage.ErrUnsupportedReceiptType) {
				return nil, &StoreError{Message: MsgInvalidReceipt, Err: err}
			}
			return nil, &StoreError{Message: MsgReceiptUploadFailed, Err: err}
		}
	}

	categoryID := input.CategoryID
	transaction := &models.Transaction{
		UserID:      input.UserID,
		AccountID:   input.AccountID,
		FundingKind: fundingKind,
		CategoryID:  &categoryID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		Status:      input.Status,
		ReceiptURL:  receiptURL,
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		s.discardReceipt(ctx, receiptURL)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	msg, err := events.NewTransactionCreated(transaction, s.now())
	if err == nil {
		err = s.publisher.Publish(ctx, msg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish transaction event",
			slog.String("transaction_id", transaction.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return transaction, nil
}

// discardReceipt removes a receipt whose transaction row was never written
func (s *transactionStore) discardReceipt(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.receipts.Delete(context.WithoutCancel(ctx), url); err != nil {
		s.logger.WarnContext(ctx, "failed to remove orphaned receipt",
			slog.String("receipt_url", url),
			slog.String("error", err.Error()),
		)
	}
}

// resolveFunding looks the id up among accounts first, then credit cards
func (s *transactionStore) resolveFunding(ctx context.Context, userID, id uuid.UUID) (string, error) {
	account, err := s.accounts.GetByID(ctx, id)
	switch {
	case err == nil:
		if account.UserID != userID {
			return "", &StoreError{Message: MsgUnknownFunding, Err: ErrUnknownFundingSource}
		}
		if !account.IsActive {
			return "", &StoreError{Message: MsgUnknownFunding, Err: ErrInactiveFundingSource}
		}
		return models.FundingKindAccount, nil
	case !errors.Is(err, repositories.ErrAccountNotFound):
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCreditCardNotFound) {
			return "", &StoreError{Message: MsgUnknownFunding, Err: ErrUnknownFundingSource}
		}
		return "", fmt.Errorf("failed to get credit card: %w", err)
	}
	if card.UserID != userID {
		return "", &StoreError{Message: MsgUnknownFunding, Err: ErrUnknownFundingSource}
	}
	if !card.IsActive {
		return "", &StoreError{Message: MsgUnknownFunding, Err: ErrInactiveFundingSource}
	}
	return models.FundingKindCreditCard, nil
}

func (s *transactionStore) checkCategory(ctx context.Context, input TransactionInput) error {
	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return &StoreError{Message: MsgInvalidCategory, Err: ErrInvalidCategoryRef}
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	if category.UserID != input.UserID {
		return &StoreError{Message: MsgInvalidCategory, Err: ErrInvalidCategoryRef}
	}
	if !category.IsActive {
		return &StoreError{Message: MsgInvalidCategory, Err: ErrInactiveCategory}
	}
	if !category.Matches(input.Type) {
		return &StoreError{
			Message: MsgCategoryMismatch,
			Err:     &CategoryMismatchError{CategoryID: category.ID.String(), Direction: input.Type},
		}
	}
	return nil
}
