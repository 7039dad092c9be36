package services

import (
	"context"
	"errors"
	"fmt"

	"personal-finance/internal/models"
	"personal-finance/internal/repositories"

	"github.com/google/uuid"
)

type categoryPanelService struct {
	store       CategoryStore
	repo        repositories.CategoryRepositoryInterface
	entryLogger EntryLoggerInterface
	metrics     MetricsRecorderInterface
	catalog     []CategorySuggestion
}

// NewCategoryPanelService creates the service behind the category management endpoints
func NewCategoryPanelService(
	store CategoryStore,
	repo repositories.CategoryRepositoryInterface,
	entryLogger EntryLoggerInterface,
	metrics MetricsRecorderInterface,
) CategoryPanelServiceInterface {
	return &categoryPanelService{
		store:       store,
		repo:        repo,
		entryLogger: entryLogger,
		metrics:     metrics,
		catalog:     DefaultCategoryCatalog,
	}
}

func (s *categoryPanelService) Panel(ctx context.Context, userID uuid.UUID) (*CategoryPanelView, error) {
	panel := NewCategoryPanel(userID, s.store, discardNotifier{}, s.catalog)
	if err := panel.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return panel.View(), nil
}

func (s *categoryPanelService) SelectSuggestion(ctx context.Context, userID uuid.UUID, name string) (*CategoryForm, error) {
	panel := NewCategoryPanel(userID, s.store, discardNotifier{}, s.catalog)
	form, err := panel.SelectSuggestion(name)
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *categoryPanelService) CreateCategory(ctx context.Context, userID uuid.UUID, form CategoryForm, notifier Notifier) (*models.Category, error) {
	if notifier == nil {
		notifier = discardNotifier{}
	}

	panel := NewCategoryPanel(userID, s.store, notifier, s.catalog)
	panel.SetForm(form)

	category, err := panel.Create(ctx)
	if err != nil {
		s.metrics.IncrementCounter("category.created", map[string]string{"outcome": "failed"})
		return nil, err
	}

	s.entryLogger.LogCategoryCreated(ctx, userID, category.ID, category.Name)
	s.metrics.IncrementCounter("category.created", map[string]string{"outcome": "success", "type": category.TransactionType})
	return category, nil
}

func (s *categoryPanelService) DeactivateCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	if err := s.repo.Deactivate(ctx, userID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("failed to deactivate category: %w", err)
	}

	s.entryLogger.LogCategoryDeactivated(ctx, userID, categoryID)
	return nil
}
