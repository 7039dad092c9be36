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
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

// Create persists a new category. An active category with the same folded name and
// direction violates idx_categories_active_name_key and surfaces as ErrCategoryExists.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// ListByUser returns the user's categories in creation order
func (r *categoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]models.Category, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var categories []models.Category
	if err := query.Order("created_at ASC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ExistsByName reports whether an active category with the same name (case-insensitive)
// already exists for the user and direction
func (r *categoryRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name, direction string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("user_id = ? AND transaction_type = ? AND is_active = ?", userID, direction, true).
		Where("name_key = ?", models.CategoryNameKey(name)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

// Deactivate soft-deletes a category owned by the user
func (r *categoryRepository) Deactivate(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
