package handlers

import (
	stderrors "errors"
	"log/slog"

	"personal-finance/internal/errors"
	"personal-finance/internal/models"
	"personal-finance/internal/repositories"
	"personal-finance/internal/services"
	"personal-finance/internal/storage"

	"github.com/labstack/echo/v4"
)

// sendEntryError maps a transaction entry failure to its error code. message is the
// notification the form emitted for it and replaces the code's default text when set.
func sendEntryError(c echo.Context, logger *slog.Logger, err error, message string) error {
	opts := []errors.ErrorOption{}
	if message != "" {
		opts = append(opts, errors.WithMessage(message))
	}

	var (
		missing  *services.MissingFieldError
		amount   *services.InvalidAmountError
		field    *services.InvalidFieldError
		mismatch *services.CategoryMismatchError
		storeErr *services.StoreError
	)

	switch {
	case stderrors.Is(err, services.ErrSubmissionInProgress):
		return SendError(c, errors.TransactionSubmitInProgress)
	case stderrors.Is(err, services.ErrInvalidDirection):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.As(err, &missing):
		return SendError(c, errors.TransactionMissingFields, append(opts, errors.WithDetails(missing.Fields...))...)
	case stderrors.As(err, &amount):
		return SendError(c, errors.TransactionInvalidAmount, append(opts, errors.WithDetails(amount.Reason))...)
	case stderrors.As(err, &mismatch):
		return SendError(c, errors.CategoryDirectionMismatch, opts...)
	case stderrors.As(err, &field):
		return SendError(c, errors.ValidationInvalidFormat, append(opts, errors.WithDetails(field.Field+": "+field.Reason))...)
	case stderrors.Is(err, services.ErrUnknownFundingSource):
		return SendError(c, errors.AccountNotFound, opts...)
	case stderrors.Is(err, services.ErrInactiveFundingSource):
		return SendError(c, errors.AccountInactive, opts...)
	case stderrors.Is(err, services.ErrInvalidCategoryRef):
		return SendError(c, errors.TransactionInvalidReferences, opts...)
	case stderrors.Is(err, services.ErrInactiveCategory):
		return SendError(c, errors.CategoryInactive, opts...)
	case isReceiptRejection(err):
		return SendError(c, errors.ValidationFileRejected, opts...)
	case stderrors.As(err, &storeErr):
		logger.Warn("transaction store failure", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.TransactionSubmissionFailed, opts...)
	}

	var submission *services.SubmissionError
	if stderrors.As(err, &submission) {
		logger.Error("transaction submission failed", "trace_id", getTraceID(c), "error", err)
		return SendError(c, errors.TransactionSubmissionFailed, opts...)
	}

	logger.Error("transaction entry failed", "trace_id", getTraceID(c), "error", err)
	return SendSystemError(c, err)
}

// sendCategoryError maps a category panel failure to its error code
func sendCategoryError(c echo.Context, logger *slog.Logger, err error, message string) error {
	opts := []errors.ErrorOption{}
	if message != "" {
		opts = append(opts, errors.WithMessage(message))
	}

	var (
		missing *services.MissingFieldError
		field   *services.InvalidFieldError
	)

	switch {
	case stderrors.As(err, &missing):
		return SendError(c, errors.ValidationRequiredField, append(opts, errors.WithDetails(missing.Fields...))...)
	case stderrors.As(err, &field):
		return SendError(c, errors.CategoryInvalidParent, opts...)
	case stderrors.Is(err, services.ErrInvalidDirection):
		return SendError(c, errors.TransactionInvalidType, opts...)
	case stderrors.Is(err, services.ErrDuplicateCategory):
		return SendError(c, errors.CategoryAlreadyExists, opts...)
	case stderrors.Is(err, services.ErrInvalidParentCategory):
		return SendError(c, errors.CategoryInvalidParent, opts...)
	case stderrors.Is(err, services.ErrSuggestionNotFound):
		return SendError(c, errors.ResourceNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case isCategoryDataError(err):
		return SendError(c, errors.ValidationInvalidFormat, append(opts, errors.WithDetails(err.Error()))...)
	}

	logger.Error("category operation failed", "trace_id", getTraceID(c), "error", err)
	return SendSystemError(c, err)
}

func isReceiptRejection(err error) bool {
	return stderrors.Is(err, storage.ErrReceiptEmpty) ||
		stderrors.Is(err, storage.ErrReceiptTooLarge) ||
		stderrors.Is(err, storage.ErrUnsupportedReceiptType)
}

func isCategoryDataError(err error) bool {
	return stderrors.Is(err, models.ErrCategoryNameRequired) ||
		stderrors.Is(err, models.ErrCategoryNameTooLong) ||
		stderrors.Is(err, models.ErrInvalidCategoryColor) ||
		stderrors.Is(err, models.ErrCategorySelfReference)
}
