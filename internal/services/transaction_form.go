package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"personal-finance/internal/models"

	"github.com/google/uuid"
)

// FormState is the phase of a transaction entry form
type FormState int

const (
	StateEditing FormState = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s FormState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	fieldAmount      = "amount"
	fieldDescription = "description"
	fieldAccountID   = "account_id"
	fieldCategoryID  = "category_id"
	fieldDate        = "date"
)

// TransactionForm holds one transaction draft and drives it from editing to submission.
// At most one submission runs at a time; a concurrent Submit returns ErrSubmissionInProgress.
type TransactionForm struct {
	userID      uuid.UUID
	store       TransactionStore
	notifier    Notifier
	entryLogger EntryLoggerInterface
	metrics     MetricsRecorderInterface
	now         func() time.Time

	mu         sync.Mutex
	draft      models.TransactionDraft
	categories []models.Category
	state      FormState

	submitting atomic.Bool
}

// NewTransactionForm creates an expense form dated today
func NewTransactionForm(
	userID uuid.UUID,
	store TransactionStore,
	notifier Notifier,
	entryLogger EntryLoggerInterface,
	metrics MetricsRecorderInterface,
	now func() time.Time,
) *TransactionForm {
	if now == nil {
		now = time.Now
	}
	f := &TransactionForm{
		userID:      userID,
		store:       store,
		notifier:    notifier,
		entryLogger: entryLogger,
		metrics:     metrics,
		now:         now,
		state:       StateEditing,
	}
	f.draft = f.emptyDraft(models.DirectionExpense)
	return f
}

func (f *TransactionForm) emptyDraft(direction string) models.TransactionDraft {
	return models.TransactionDraft{
		Type:   direction,
		Date:   f.now().Format(models.DateLayout),
		Status: models.TransactionStatusCompleted,
	}
}

// Draft returns a copy of the current draft
func (f *TransactionForm) Draft() models.TransactionDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// State returns the current phase
func (f *TransactionForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetCategories replaces the category collection the form selects from
func (f *TransactionForm) SetCategories(categories []models.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = categories
}

// CategoryOptions returns the categories matching the current direction
func (f *TransactionForm) CategoryOptions() []models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FilterCategoriesByDirection(f.categories, f.draft.Type)
}

// SetDirection switches between income and expense; a change clears the selected category
func (f *TransactionForm) SetDirection(direction string) error {
	if !models.IsValidDirection(direction) {
		return ErrInvalidDirection
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.Type != direction {
		f.draft.Type = direction
		f.draft.CategoryID = ""
	}
	return nil
}

func (f *TransactionForm) SetAmount(amount string) {
	f.update(func(d *models.TransactionDraft) { d.Amount = amount })
}

func (f *TransactionForm) SetDescription(description string) {
	f.update(func(d *models.TransactionDraft) { d.Description = description })
}

func (f *TransactionForm) SetAccountID(accountID string) {
	f.update(func(d *models.TransactionDraft) { d.AccountID = accountID })
}

func (f *TransactionForm) SetCategoryID(categoryID string) {
	f.update(func(d *models.TransactionDraft) { d.CategoryID = categoryID })
}

func (f *TransactionForm) SetDate(date string) {
	f.update(func(d *models.TransactionDraft) { d.Date = date })
}

func (f *TransactionForm) SetReceipt(file *models.ReceiptFile) {
	f.update(func(d *models.TransactionDraft) { d.Receipt = file })
}

func (f *TransactionForm) update(apply func(d *models.TransactionDraft)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	apply(&f.draft)
}

// Fill applies every editable field of draft; an empty date keeps today's date
func (f *TransactionForm) Fill(draft models.TransactionDraft) error {
	if err := f.SetDirection(draft.Type); err != nil {
		return err
	}

	f.update(func(d *models.TransactionDraft) {
		d.Amount = draft.Amount
		d.Description = draft.Description
		d.AccountID = draft.AccountID
		d.CategoryID = draft.CategoryID
		if draft.Date != "" {
			d.Date = draft.Date
		}
		d.Receipt = draft.Receipt
	})
	return nil
}

// Submit validates the draft and, when valid, issues exactly one create call to the store.
// Every attempt that gets past the in-flight check produces exactly one notification.
func (f *TransactionForm) Submit(ctx context.Context) (*models.Transaction, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer f.submitting.Store(false)

	f.setState(StateValidating)
	input, err := f.validate()
	if err != nil {
		f.rejectDraft(ctx, err)
		return nil, err
	}

	f.setState(StateSubmitting)
	f.entryLogger.LogSubmissionStarted(ctx, f.userID, input.Type)
	start := time.Now()

	transaction, err := f.store.Create(ctx, input)
	elapsed := time.Since(start)
	f.metrics.RecordProcessingTime("transaction.submission", elapsed)

	if err != nil {
		f.setState(StateFailed)
		f.entryLogger.LogSubmissionFailed(ctx, f.userID, err.Error())
		f.metrics.IncrementCounter("transaction.submission", map[string]string{"outcome": "failed"})

		submissionErr := &SubmissionError{Err: err}
		f.notifier.Error(submissionErr.UserMessage(MsgTransactionFailed))
		f.setState(StateEditing)
		return nil, submissionErr
	}

	f.setState(StateSucceeded)
	f.entryLogger.LogSubmissionCompleted(ctx, f.userID, transaction.ID, elapsed.Milliseconds())
	f.metrics.IncrementCounter("transaction.submission", map[string]string{"outcome": "success", "type": input.Type})

	f.notifier.Success(successMessage(input.Type))
	f.reset()
	return transaction, nil
}

func (f *TransactionForm) rejectDraft(ctx context.Context, err error) {
	var (
		missing  *MissingFieldError
		amount   *InvalidAmountError
		mismatch *CategoryMismatchError
		field    *InvalidFieldError
	)

	reason, message, fields := "invalid_field", MsgInvalidField, []string(nil)
	switch {
	case errors.As(err, &missing):
		reason, message, fields = "missing_fields", MsgMissingFields, missing.Fields
	case errors.As(err, &amount):
		reason, message, fields = "invalid_amount", MsgInvalidAmount, []string{fieldAmount}
	case errors.As(err, &mismatch):
		reason, message, fields = "category_mismatch", MsgCategoryMismatch, []string{fieldCategoryID}
	case errors.As(err, &field):
		fields = []string{field.Field}
	}

	f.entryLogger.LogValidationFailed(ctx, f.userID, reason, fields)
	f.metrics.IncrementCounter("transaction.validation_failed", map[string]string{"reason": reason})
	f.notifier.Error(message)
	f.setState(StateEditing)
}

func (f *TransactionForm) validate() (TransactionInput, error) {
	f.mu.Lock()
	draft := f.draft
	categories := f.categories
	f.mu.Unlock()

	var missing []string
	if strings.TrimSpace(draft.Amount) == "" {
		missing = append(missing, fieldAmount)
	}
	if strings.TrimSpace(draft.Description) == "" {
		missing = append(missing, fieldDescription)
	}
	if strings.TrimSpace(draft.AccountID) == "" {
		missing = append(missing, fieldAccountID)
	}
	if strings.TrimSpace(draft.CategoryID) == "" {
		missing = append(missing, fieldCategoryID)
	}
	if len(missing) > 0 {
		return TransactionInput{}, &MissingFieldError{Fields: missing}
	}

	amount, err := ParseAmount(draft.Amount)
	if err != nil {
		return TransactionInput{}, err
	}

	accountID, err := uuid.Parse(strings.TrimSpace(draft.AccountID))
	if err != nil {
		return TransactionInput{}, &InvalidFieldError{Field: fieldAccountID, Reason: "not a valid identifier"}
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(draft.CategoryID))
	if err != nil {
		return TransactionInput{}, &InvalidFieldError{Field: fieldCategoryID, Reason: "not a valid identifier"}
	}

	if categories != nil {
		category, ok := findCategory(categories, categoryID.String())
		if !ok {
			return TransactionInput{}, &InvalidFieldError{Field: fieldCategoryID, Reason: "unknown category"}
		}
		if !category.Matches(draft.Type) {
			return TransactionInput{}, &CategoryMismatchError{CategoryID: categoryID.String(), Direction: draft.Type}
		}
	}

	date := f.now()
	if draft.Date != "" {
		date, err = time.Parse(models.DateLayout, draft.Date)
		if err != nil {
			return TransactionInput{}, &InvalidFieldError{Field: fieldDate, Reason: "expected YYYY-MM-DD"}
		}
	}

	return TransactionInput{
		UserID:      f.userID,
		Type:        draft.Type,
		Amount:      amount,
		Description: strings.TrimSpace(draft.Description),
		AccountID:   accountID,
		CategoryID:  categoryID,
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Status:      models.TransactionStatusCompleted,
		Receipt:     draft.Receipt,
	}, nil
}

// reset clears every field except the direction and returns to editing
func (f *TransactionForm) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.emptyDraft(f.draft.Type)
	f.state = StateEditing
}

func (f *TransactionForm) setState(state FormState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
}
