package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"personal-finance/internal/dto"
	"personal-finance/internal/errors"
	"personal-finance/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category management panel
type CategoryHandler struct {
	service services.CategoryPanelServiceInterface
	logger  *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service services.CategoryPanelServiceInterface, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{service: service, logger: logger}
}

// GetPanel returns the user's categories grouped by direction plus creation suggestions
// @Summary Category management panel
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.CategoryPanelResponse}
// @Router /categories/panel [get]
func (h *CategoryHandler) GetPanel(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	view, err := h.service.Panel(c.Request().Context(), userID)
	if err != nil {
		return sendCategoryError(c, h.logger, err, "")
	}

	return sendData(c, http.StatusOK, toPanelResponse(view), "")
}

// SelectSuggestion returns the creation form prefilled from a catalog suggestion
// @Summary Prefill the category form from a suggestion
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param name path string true "Suggestion name"
// @Success 200 {object} SuccessResponse{data=dto.CategoryForm}
// @Failure 404 {object} errors.ErrorResponse "SYSTEM_006 - Unknown suggestion"
// @Router /categories/suggestions/{name} [post]
func (h *CategoryHandler) SelectSuggestion(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid suggestion name"))
	}

	form, err := h.service.SelectSuggestion(c.Request().Context(), userID, name)
	if err != nil {
		return sendCategoryError(c, h.logger, err, "")
	}

	return sendData(c, http.StatusOK, toFormDTO(*form), "")
}

// CreateCategory persists a new category from the panel's creation form
// @Summary Create a category
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} SuccessResponse{data=dto.CreateCategoryResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Name is required"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Duplicate name"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_004 - Invalid parent"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	collector := services.NewCollectingNotifier()
	notifier := services.FanoutNotifier{collector, services.NewLogNotifier(h.logger.With("user_id", userID.String()))}

	category, err := h.service.CreateCategory(c.Request().Context(), userID, services.CategoryForm{
		Name:            req.Name,
		Icon:            req.Icon,
		Color:           req.Color,
		TransactionType: req.TransactionType,
		ParentID:        req.ParentID,
		Open:            true,
	}, notifier)
	if err != nil {
		return sendCategoryError(c, h.logger, err, lastMessage(collector))
	}

	return sendData(c, http.StatusCreated, dto.CreateCategoryResponse{
		Category:      category,
		Notifications: toNotificationDTOs(collector.Notifications()),
	}, lastMessage(collector))
}

// DeactivateCategory hides a category from selection; existing transactions keep it
// @Summary Deactivate a category
// @Tags Categories
// @Security BearerAuth
// @Param id path string true "Category ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeactivateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.service.DeactivateCategory(c.Request().Context(), userID, categoryID); err != nil {
		return sendCategoryError(c, h.logger, err, "")
	}

	return c.NoContent(http.StatusNoContent)
}

func toPanelResponse(view *services.CategoryPanelView) dto.CategoryPanelResponse {
	suggestions := make([]dto.CategorySuggestion, 0, len(view.Suggestions))
	for _, s := range view.Suggestions {
		suggestions = append(suggestions, dto.CategorySuggestion{
			Name:            s.Name,
			Icon:            s.Icon,
			Color:           s.Color,
			TransactionType: s.TransactionType,
		})
	}
	return dto.CategoryPanelResponse{
		Income:      view.Income,
		Expense:     view.Expense,
		Suggestions: suggestions,
		Loading:     view.Loading,
		Form:        toFormDTO(view.Form),
	}
}

func toFormDTO(form services.CategoryForm) dto.CategoryForm {
	return dto.CategoryForm{
		Name:            form.Name,
		Icon:            form.Icon,
		Color:           form.Color,
		TransactionType: form.TransactionType,
		ParentID:        form.ParentID,
		Open:            form.Open,
	}
}
