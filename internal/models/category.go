package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"

	DefaultCategoryIcon  = "📦"
	DefaultCategoryColor = "#6B7280"

	maxCategoryNameLength = 60
)

var (
	ErrInvalidDirection      = errors.New("invalid transaction direction")
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrCategoryNameTooLong   = errors.New("category name too long")
	ErrInvalidCategoryColor  = errors.New("category color must be a hex color")
	ErrDirectionImmutable    = errors.New("category transaction type cannot be changed")
	ErrCategorySelfReference = errors.New("category cannot be its own parent")

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Category is a user-defined classification for income or expense transactions
type Category struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_active_name_key,priority:1" json:"user_id"`
	Name            string     `gorm:"type:varchar(60);not null" json:"name"`
	NameKey         string     `gorm:"type:varchar(60);not null;uniqueIndex:idx_categories_active_name_key,priority:3,where:is_active" json:"-"`
	Icon            string     `gorm:"type:varchar(16);not null" json:"icon"`
	Color           string     `gorm:"type:varchar(7);not null" json:"color"`
	TransactionType string     `gorm:"type:varchar(10);not null;index;uniqueIndex:idx_categories_active_name_key,priority:2" json:"transaction_type"`
	ParentID        *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	Parent *Category `gorm:"foreignKey:ParentID" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	c.NameKey = CategoryNameKey(c.Name)

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate keeps transaction_type fixed once the row exists
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if tx != nil && tx.Statement != nil && tx.Statement.Changed("TransactionType") {
		return ErrDirectionImmutable
	}
	return nil
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrCategoryNameRequired
	}
	if len([]rune(name)) > maxCategoryNameLength {
		return ErrCategoryNameTooLong
	}

	if !IsValidDirection(c.TransactionType) {
		return ErrInvalidDirection
	}

	if c.Color != "" && !hexColorPattern.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}

	if c.ParentID != nil && *c.ParentID == c.ID {
		return ErrCategorySelfReference
	}

	return nil
}

// Matches reports whether the category belongs to the given direction
func (c *Category) Matches(direction string) bool {
	return c.TransactionType == direction
}

// CategoryNameKey folds a category name for duplicate detection. Folding happens here
// rather than in SQL so every driver compares non-ASCII names the same way.
func CategoryNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidDirection checks if a direction is one a category can carry
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionIncome, DirectionExpense:
		return true
	default:
		return false
	}
}

// IsValidHexColor reports whether s is a #rgb or #rrggbb color
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
