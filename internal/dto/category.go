package dto

import (
	"personal-finance/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest is the category creation form. An empty name is reported by the
// panel itself so the user gets the panel's notification.
type CreateCategoryRequest struct {
	Name            string `json:"name" validate:"max=60"`
	Icon            string `json:"icon" validate:"max=16"`
	Color           string `json:"color" validate:"omitempty,hexcolor_short"`
	TransactionType string `json:"transaction_type" validate:"omitempty,direction"`
	ParentID        string `json:"parent_id" validate:"omitempty,uuid"`
}

// Category Response DTOs

// CategoryListResponse lists the categories selectable for a direction
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Loading    bool              `json:"loading"`
}

// CategorySuggestion is a default catalog entry the user does not have yet
type CategorySuggestion struct {
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	TransactionType string `json:"transaction_type"`
}

// CategoryForm is the state of the category creation form
type CategoryForm struct {
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	TransactionType string `json:"transaction_type"`
	ParentID        string `json:"parent_id,omitempty"`
	Open            bool   `json:"open"`
}

// CategoryPanelResponse is the category management panel
type CategoryPanelResponse struct {
	Income      []models.Category    `json:"income"`
	Expense     []models.Category    `json:"expense"`
	Suggestions []CategorySuggestion `json:"suggestions"`
	Loading     bool                 `json:"loading"`
	Form        CategoryForm         `json:"form"`
}

// CreateCategoryResponse is returned after a category was created
type CreateCategoryResponse struct {
	Category      *models.Category `json:"category"`
	Notifications []Notification   `json:"notifications"`
}
