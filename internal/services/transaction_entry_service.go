package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"personal-finance/internal/models"
	"personal-finance/internal/repositories"

	"github.com/google/uuid"
)

type transactionEntryService struct {
	accounts     AccountStore
	cards        CreditCardStore
	categories   CategoryStore
	transactions TransactionStore
	history      repositories.TransactionRepositoryInterface
	entryLogger  EntryLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTransactionEntryService creates the service behind the transaction entry endpoints
func NewTransactionEntryService(
	accounts AccountStore,
	cards CreditCardStore,
	categories CategoryStore,
	transactions TransactionStore,
	history repositories.TransactionRepositoryInterface,
	entryLogger EntryLoggerInterface,
	metrics MetricsRecorderInterface,
	now func() time.Time,
) TransactionEntryServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &transactionEntryService{
		accounts:     accounts,
		cards:        cards,
		categories:   categories,
		transactions: transactions,
		history:      history,
		entryLogger:  entryLogger,
		metrics:      metrics,
		now:          now,
		inFlight:     make(map[string]struct{}),
	}
}

// FundingTargets merges the user's accounts and credit cards; recomputed on every call
func (s *transactionEntryService) FundingTargets(ctx context.Context, userID uuid.UUID) ([]models.FundingTarget, error) {
	accounts, err := s.accounts.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards.Read(ctx, userID)
	if err != nil {
		return nil, err
	}
	targets := UnifyFundingSources(accounts, cards)
	s.metrics.RecordGauge("funding_targets", float64(len(targets)), nil)
	return targets, nil
}

// Categories returns the categories selectable for direction; an empty direction returns all of them
func (s *transactionEntryService) Categories(ctx context.Context, userID uuid.UUID, direction string) ([]models.Category, bool, error) {
	if direction != "" && !models.IsValidDirection(direction) {
		return nil, false, ErrInvalidDirection
	}

	categories, loading, err := s.categories.Read(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if direction == "" {
		return categories, loading, nil
	}
	return FilterCategoriesByDirection(categories, direction), loading, nil
}

// LoadForm builds the initial form state for direction (expense when empty)
func (s *transactionEntryService) LoadForm(ctx context.Context, userID uuid.UUID, direction string) (*FormData, error) {
	if direction == "" {
		direction = models.DirectionExpense
	}
	if !models.IsValidDirection(direction) {
		return nil, ErrInvalidDirection
	}

	targets, categories, loading, err := loadFormSources(ctx, userID, s.accounts, s.cards, s.categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load form data: %w", err)
	}

	form := s.newForm(userID, nil)
	if err := form.SetDirection(direction); err != nil {
		return nil, err
	}
	form.SetCategories(categories)

	return &FormData{
		FundingTargets:    targets,
		Categories:        form.CategoryOptions(),
		CategoriesLoading: loading,
		Draft:             form.Draft(),
	}, nil
}

// Submit runs one form submission. Requests sharing a form id are serialised: while one is
// in flight the others get ErrSubmissionInProgress.
func (s *transactionEntryService) Submit(
	ctx context.Context,
	userID uuid.UUID,
	formID string,
	draft models.TransactionDraft,
	notifier Notifier,
) (*models.Transaction, error) {
	if draft.Type == "" {
		draft.Type = models.DirectionExpense
	}
	if !models.IsValidDirection(draft.Type) {
		return nil, ErrInvalidDirection
	}

	key := userID.String() + ":" + formID
	if formID == "" {
		key = userID.String() + ":" + uuid.NewString()
	}
	if !s.acquire(key) {
		return nil, ErrSubmissionInProgress
	}
	defer s.release(key)

	form := s.newForm(userID, notifier)
	if err := form.Fill(draft); err != nil {
		return nil, err
	}

	categories, _, err := s.categories.Read(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	form.SetCategories(categories)

	return form.Submit(ctx)
}

// ListRecent returns the user's latest transactions, newest first
func (s *transactionEntryService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Transaction, error) {
	transactions, err := s.history.ListRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (s *transactionEntryService) newForm(userID uuid.UUID, notifier Notifier) *TransactionForm {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return NewTransactionForm(userID, s.transactions, notifier, s.entryLogger, s.metrics, s.now)
}

func (s *transactionEntryService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *transactionEntryService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
