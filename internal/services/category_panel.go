package services

import (
	"context"
	"strings"
	"sync"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

// MaxCategorySuggestions caps how many catalog entries the panel offers at once
const MaxCategorySuggestions = 6

// CategorySuggestion is a predefined category the user can adopt with one click
type CategorySuggestion struct {
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	TransactionType string `json:"transaction_type"`
}

// DefaultCategoryCatalog lists the suggested categories in display order
var DefaultCategoryCatalog = []CategorySuggestion{
	{Name: "Alimentação", Icon: "🍔", Color: "#EF4444", TransactionType: models.DirectionExpense},
	{Name: "Transporte", Icon: "🚗", Color: "#F59E0B", TransactionType: models.DirectionExpense},
	{Name: "Moradia", Icon: "🏠", Color: "#8B5CF6", TransactionType: models.DirectionExpense},
	{Name: "Lazer", Icon: "🎮", Color: "#EC4899", TransactionType: models.DirectionExpense},
	{Name: "Pets", Icon: "🐾", Color: "#A16207", TransactionType: models.DirectionExpense},
	{Name: "Academia", Icon: "🏋️", Color: "#14B8A6", TransactionType: models.DirectionExpense},
	{Name: "Saúde", Icon: "💊", Color: "#10B981", TransactionType: models.DirectionExpense},
	{Name: "Educação", Icon: "📚", Color: "#3B82F6", TransactionType: models.DirectionExpense},
	{Name: "Presentes", Icon: "🎁", Color: "#F43F5E", TransactionType: models.DirectionExpense},
	{Name: "Assinaturas", Icon: "📺", Color: "#6366F1", TransactionType: models.DirectionExpense},
	{Name: "Vestuário", Icon: "👕", Color: "#D946EF", TransactionType: models.DirectionExpense},
	{Name: "Salário", Icon: "💰", Color: "#22C55E", TransactionType: models.DirectionIncome},
	{Name: "Freelance", Icon: "💻", Color: "#0EA5E9", TransactionType: models.DirectionIncome},
	{Name: "Investimentos", Icon: "📈", Color: "#84CC16", TransactionType: models.DirectionIncome},
	{Name: "Outros", Icon: "📦", Color: "#6B7280", TransactionType: models.DirectionIncome},
}

// SuggestCategories returns up to limit catalog entries whose names the user does not already have.
// Names are compared case-insensitively; catalog order is kept.
func SuggestCategories(existing []models.Category, catalog []CategorySuggestion, limit int) []CategorySuggestion {
	taken := make(map[string]struct{}, len(existing))
	for _, category := range existing {
		taken[normalizeCategoryName(category.Name)] = struct{}{}
	}

	suggestions := make([]CategorySuggestion, 0, limit)
	for _, entry := range catalog {
		if len(suggestions) >= limit {
			break
		}
		if _, ok := taken[normalizeCategoryName(entry.Name)]; ok {
			continue
		}
		suggestions = append(suggestions, entry)
	}
	return suggestions
}

func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func findSuggestion(catalog []CategorySuggestion, name string) (CategorySuggestion, bool) {
	key := normalizeCategoryName(name)
	for _, entry := range catalog {
		if normalizeCategoryName(entry.Name) == key {
			return entry, true
		}
	}
	return CategorySuggestion{}, false
}

// CategoryForm is the new-category form of the panel
type CategoryForm struct {
	Name            string `json:"name"`
	Icon            string `json:"icon"`
	Color           string `json:"color"`
	TransactionType string `json:"transaction_type"`
	ParentID        string `json:"parent_id,omitempty"`
	Open            bool   `json:"open"`
}

// DefaultCategoryForm returns a closed, empty expense form
func DefaultCategoryForm() CategoryForm {
	return CategoryForm{
		Icon:            models.DefaultCategoryIcon,
		Color:           models.DefaultCategoryColor,
		TransactionType: models.DirectionExpense,
	}
}

// CategoryPanelView is the rendered state of the category panel
type CategoryPanelView struct {
	Income      []models.Category    `json:"income"`
	Expense     []models.Category    `json:"expense"`
	Suggestions []CategorySuggestion `json:"suggestions"`
	Loading     bool                 `json:"loading"`
	Form        CategoryForm         `json:"form"`
}

// CategoryPanel lists a user's categories by direction and creates new ones
type CategoryPanel struct {
	userID   uuid.UUID
	store    CategoryStore
	notifier Notifier
	catalog  []CategorySuggestion

	mu         sync.Mutex
	categories []models.Category
	loading    bool
	form       CategoryForm
}

// NewCategoryPanel creates a panel backed by store; a nil catalog uses DefaultCategoryCatalog
func NewCategoryPanel(userID uuid.UUID, store CategoryStore, notifier Notifier, catalog []CategorySuggestion) *CategoryPanel {
	if catalog == nil {
		catalog = DefaultCategoryCatalog
	}
	return &CategoryPanel{
		userID:   userID,
		store:    store,
		notifier: notifier,
		catalog:  catalog,
		form:     DefaultCategoryForm(),
	}
}

// Load refreshes the panel from the store
func (p *CategoryPanel) Load(ctx context.Context) error {
	categories, loading, err := p.store.Read(ctx, p.userID)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.categories = categories
	p.loading = loading
	return nil
}

// View renders the current panel state
func (p *CategoryPanel) View() *CategoryPanelView {
	p.mu.Lock()
	defer p.mu.Unlock()

	income, expense := PartitionByDirection(p.categories)
	view := &CategoryPanelView{
		Income:  income,
		Expense: expense,
		Loading: p.loading,
		Form:    p.form,
	}
	if !p.loading {
		view.Suggestions = SuggestCategories(p.categories, p.catalog, MaxCategorySuggestions)
	} else {
		view.Suggestions = []CategorySuggestion{}
	}
	return view
}

// Form returns the new-category form
func (p *CategoryPanel) Form() CategoryForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// SetForm replaces the new-category form
func (p *CategoryPanel) SetForm(form CategoryForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

// SelectSuggestion prefills and opens the form with a catalog entry
func (p *CategoryPanel) SelectSuggestion(name string) (CategoryForm, error) {
	entry, ok := findSuggestion(p.catalog, name)
	if !ok {
		return CategoryForm{}, ErrSuggestionNotFound
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = CategoryForm{
		Name:            entry.Name,
		Icon:            entry.Icon,
		Color:           entry.Color,
		TransactionType: entry.TransactionType,
		Open:            true,
	}
	return p.form, nil
}

// Create submits the form. Success resets and closes it; failure keeps it for correction.
func (p *CategoryPanel) Create(ctx context.Context) (*models.Category, error) {
	form := p.Form()

	name := strings.TrimSpace(form.Name)
	if name == "" {
		p.notifier.Error(MsgCategoryNameRequired)
		return nil, &MissingFieldError{Fields: []string{"name"}}
	}

	direction := form.TransactionType
	if direction == "" {
		direction = models.DirectionExpense
	}
	if !models.IsValidDirection(direction) {
		p.notifier.Error(MsgCategoryInvalidData)
		return nil, ErrInvalidDirection
	}

	category := &models.Category{
		UserID:          p.userID,
		Name:            name,
		Icon:            form.Icon,
		Color:           form.Color,
		TransactionType: direction,
		IsActive:        true,
	}
	if form.ParentID != "" {
		parentID, err := uuid.Parse(form.ParentID)
		if err != nil {
			p.notifier.Error(MsgInvalidParent)
			return nil, &InvalidFieldError{Field: "parent_id", Reason: "not a valid identifier"}
		}
		category.ParentID = &parentID
	}

	created, err := p.store.Create(ctx, category)
	if err != nil {
		p.notifier.Error(userMessage(err, MsgCategoryFailed))
		return nil, err
	}

	p.mu.Lock()
	p.categories = append(p.categories, *created)
	p.form = DefaultCategoryForm()
	p.mu.Unlock()

	p.notifier.Success(MsgCategoryCreated)
	return created, nil
}
