package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSubmissionInProgress  = errors.New("a submission is already in progress for this form")
	ErrInvalidDirection      = errors.New("direction must be income or expense")
	ErrUnknownFundingSource  = errors.New("account or credit card not found")
	ErrInactiveFundingSource = errors.New("account or credit card is inactive")
	ErrInvalidCategoryRef    = errors.New("category not found")
	ErrInactiveCategory      = errors.New("category is inactive")
	ErrDuplicateCategory     = errors.New("category already exists")
	ErrInvalidParentCategory = errors.New("invalid parent category")
	ErrSuggestionNotFound    = errors.New("category suggestion not found")
)

// MissingFieldError reports required draft fields that were left empty
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// InvalidAmountError reports an amount that is not a finite number greater than zero
type InvalidAmountError struct {
	Input  string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Input, e.Reason)
}

// InvalidFieldError reports a field whose value cannot be interpreted
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CategoryMismatchError reports a category whose direction differs from the draft's
type CategoryMismatchError struct {
	CategoryID string
	Direction  string
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("category %s does not belong to %s transactions", e.CategoryID, e.Direction)
}

// StoreError is a store failure carrying a message that can be shown to the user
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// SubmissionError wraps a failure returned by the transaction store
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "transaction submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// UserMessage returns the store's user-facing reason, or fallback when there is none
func (e *SubmissionError) UserMessage(fallback string) string {
	return userMessage(e.Err, fallback)
}

func userMessage(err error, fallback string) string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Message != "" {
		return storeErr.Message
	}
	return fallback
}

// IsValidationError reports whether err was produced by draft validation
func IsValidationError(err error) bool {
	var (
		missing  *MissingFieldError
		amount   *InvalidAmountError
		field    *InvalidFieldError
		mismatch *CategoryMismatchError
	)
	return errors.As(err, &missing) || errors.As(err, &amount) ||
		errors.As(err, &field) || errors.As(err, &mismatch)
}
