package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID attaches the request's trace id so entry log lines can be joined with access logs
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or an empty string
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}

type EntryLogger struct {
	logger *slog.Logger
}

func NewEntryLogger(logger *slog.Logger) EntryLoggerInterface {
	return &EntryLogger{
		logger: logger,
	}
}

func (l *EntryLogger) LogValidationFailed(ctx context.Context, userID uuid.UUID, reason string, fields []string) {
	l.logger.InfoContext(ctx, "transaction draft rejected",
		slog.String("event_type", "validation_failed"),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason),
		slog.Any("fields", fields),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *EntryLogger) LogSubmissionStarted(ctx context.Context, userID uuid.UUID, direction string) {
	l.logger.InfoContext(ctx, "transaction submission started",
		slog.String("event_type", "submission_started"),
		slog.String("user_id", userID.String()),
		slog.String("direction", direction),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *EntryLogger) LogSubmissionCompleted(ctx context.Context, userID, transactionID uuid.UUID, durationMs int64) {
	l.logger.InfoContext(ctx, "transaction submission completed",
		slog.String("event_type", "submission_completed"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *EntryLogger) LogSubmissionFailed(ctx context.Context, userID uuid.UUID, errorMsg string) {
	l.logger.WarnContext(ctx, "transaction submission failed",
		slog.String("event_type", "submission_failed"),
		slog.String("user_id", userID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *EntryLogger) LogCategoryCreated(ctx context.Context, userID, categoryID uuid.UUID, name string) {
	l.logger.InfoContext(ctx, "category created",
		slog.String("event_type", "category_created"),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (l *EntryLogger) LogCategoryDeactivated(ctx context.Context, userID, categoryID uuid.UUID) {
	l.logger.InfoContext(ctx, "category deactivated",
		slog.String("event_type", "category_deactivated"),
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
