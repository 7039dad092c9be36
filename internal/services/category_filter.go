package services

import "personal-finance/internal/models"

// FilterCategoriesByDirection returns the categories of the given direction, in source order
func FilterCategoriesByDirection(categories []models.Category, direction string) []models.Category {
	filtered := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if category.Matches(direction) {
			filtered = append(filtered, category)
		}
	}
	return filtered
}

// PartitionByDirection splits categories into income and expense, preserving order
func PartitionByDirection(categories []models.Category) (income, expense []models.Category) {
	return FilterCategoriesByDirection(categories, models.DirectionIncome),
		FilterCategoriesByDirection(categories, models.DirectionExpense)
}

func findCategory(categories []models.Category, id string) (*models.Category, bool) {
	for i := range categories {
		if categories[i].ID.String() == id {
			return &categories[i], true
		}
	}
	return nil, false
}
