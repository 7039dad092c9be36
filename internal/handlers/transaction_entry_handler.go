package handlers

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"personal-finance/internal/dto"
	"personal-finance/internal/errors"
	"personal-finance/internal/models"
	"personal-finance/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// FormIDHeader identifies one open entry form; concurrent submits of the same form are rejected
	FormIDHeader = "X-Form-ID"

	receiptField          = "receipt"
	defaultRecentLimit    = 20
	maxRecentLimit        = 100
	multipartFieldsBudget = 64 << 10
)

// TransactionEntryHandler serves the transaction entry form
type TransactionEntryHandler struct {
	service         services.TransactionEntryServiceInterface
	logger          *slog.Logger
	maxReceiptBytes int64
}

// NewTransactionEntryHandler creates a new transaction entry handler
func NewTransactionEntryHandler(service services.TransactionEntryServiceInterface, logger *slog.Logger, maxReceiptBytes int64) *TransactionEntryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionEntryHandler{
		service:         service,
		logger:          logger,
		maxReceiptBytes: maxReceiptBytes,
	}
}

// ListFundingTargets returns accounts and credit cards as one selectable list
// @Summary List funding targets
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.FundingTargetsResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing authentication"
// @Router /funding-targets [get]
func (h *TransactionEntryHandler) ListFundingTargets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	targets, err := h.service.FundingTargets(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("failed to load funding targets", "trace_id", getTraceID(c), "error", err)
		return SendSystemError(c, err)
	}

	return sendData(c, http.StatusOK, dto.FundingTargetsResponse{FundingTargets: targets}, "")
}

// ListCategories returns the categories selectable for the requested direction
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Direction filter" Enums(income, expense)
// @Success 200 {object} SuccessResponse{data=dto.CategoryListResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_005 - Invalid direction"
// @Router /categories [get]
func (h *TransactionEntryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, loading, err := h.service.Categories(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		return sendEntryError(c, h.logger, err, "")
	}

	return sendData(c, http.StatusOK, dto.CategoryListResponse{Categories: categories, Loading: loading}, "")
}

// GetTransactionForm returns the initial state of the entry form
// @Summary Load the transaction entry form
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param type query string false "Direction" Enums(income, expense)
// @Success 200 {object} SuccessResponse{data=dto.TransactionFormResponse}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_005 - Invalid direction"
// @Router /transaction-form [get]
func (h *TransactionEntryHandler) GetTransactionForm(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	form, err := h.service.LoadForm(c.Request().Context(), userID, c.QueryParam("type"))
	if err != nil {
		return sendEntryError(c, h.logger, err, "")
	}

	return sendData(c, http.StatusOK, dto.TransactionFormResponse{
		FundingTargets:    form.FundingTargets,
		Categories:        form.Categories,
		CategoriesLoading: form.CategoriesLoading,
		Draft:             form.Draft,
	}, "")
}

// CreateTransaction submits the entry form, as JSON or multipart with an optional receipt
// @Summary Submit a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param X-Form-ID header string false "Entry form instance"
// @Param request body dto.TransactionRequest true "Transaction draft"
// @Success 201 {object} SuccessResponse{data=dto.SubmitTransactionResponse}
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_003 - Submission already in progress"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_001/002 - Invalid draft"
// @Failure 502 {object} errors.ErrorResponse "TRANSACTION_004 - Store failed"
// @Router /transactions [post]
func (h *TransactionEntryHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	multipart := strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
	if multipart {
		c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, h.maxReceiptBytes+multipartFieldsBudget)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft := req.ToDraft()
	if multipart {
		receipt, err := h.readReceipt(c)
		if err != nil {
			return SendError(c, errors.ValidationFileRejected, errors.WithDetails(err.Error()))
		}
		draft.Receipt = receipt
	}

	formID := c.Request().Header.Get(FormIDHeader)
	if formID == "" {
		formID = req.FormID
	}

	collector := services.NewCollectingNotifier()
	notifier := services.FanoutNotifier{collector, services.NewLogNotifier(h.logger.With("user_id", userID.String()))}

	tx, err := h.service.Submit(c.Request().Context(), userID, formID, draft, notifier)
	if err != nil {
		return sendEntryError(c, h.logger, err, lastMessage(collector))
	}

	return sendData(c, http.StatusCreated, dto.SubmitTransactionResponse{
		Transaction:   tx,
		Notifications: toNotificationDTOs(collector.Notifications()),
	}, lastMessage(collector))
}

// ListTransactions returns the caller's latest transactions
// @Summary List recent transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of results (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=dto.ListTransactionsResponse}
// @Router /transactions [get]
func (h *TransactionEntryHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", defaultRecentLimit)
	if limit < 1 || limit > maxRecentLimit {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("limit must be between 1 and 100"))
	}

	transactions, err := h.service.ListRecent(c.Request().Context(), userID, limit)
	if err != nil {
		h.logger.Error("failed to list transactions", "trace_id", getTraceID(c), "error", err)
		return SendSystemError(c, err)
	}

	return sendData(c, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
	}, "")
}

// readReceipt returns the uploaded receipt, or nil when the form carries none
func (h *TransactionEntryHandler) readReceipt(c echo.Context) (*models.ReceiptFile, error) {
	header, err := c.FormFile(receiptField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size > h.maxReceiptBytes {
		return nil, stderrors.New("receipt exceeds the maximum size")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxReceiptBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > h.maxReceiptBytes {
		return nil, stderrors.New("receipt exceeds the maximum size")
	}

	return &models.ReceiptFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
