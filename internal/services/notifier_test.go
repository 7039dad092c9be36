package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectingNotifier(t *testing.T) {
	n := NewCollectingNotifier()

	_, ok := n.Last()
	assert.False(t, ok)

	n.Error(MsgMissingFields)
	n.Success(MsgExpenseCreated)

	assert.Equal(t, []Notification{
		{Kind: NotificationError, Message: MsgMissingFields},
		{Kind: NotificationSuccess, Message: MsgExpenseCreated},
	}, n.Notifications())

	last, ok := n.Last()
	assert.True(t, ok)
	assert.Equal(t, MsgExpenseCreated, last.Message)
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewJSONHandler(&buf, nil)))

	n.Success(MsgIncomeCreated)
	n.Error(MsgTransactionFailed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, MsgIncomeCreated, first["message"])
	assert.Equal(t, "WARN", second["level"])
	assert.Equal(t, NotificationError, second["kind"])
}

func TestFanoutNotifier(t *testing.T) {
	first, second := NewCollectingNotifier(), NewCollectingNotifier()
	fanout := FanoutNotifier{first, second}

	fanout.Error(MsgInvalidAmount)
	fanout.Success(MsgCategoryCreated)

	assert.Equal(t, first.Notifications(), second.Notifications())
	assert.Len(t, first.Notifications(), 2)
}

func TestEntryLogger_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewEntryLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithCorrelationID(context.Background(), "trace-123")
	userID := uuid.New()

	logger.LogValidationFailed(ctx, userID, "missing_fields", []string{"amount", "category_id"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validation_failed", entry["event_type"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, "trace-123", entry["correlation_id"])
	assert.Equal(t, []any{"amount", "category_id"}, entry["fields"])
}

func TestEntryLogger_SubmissionFailedIsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := NewEntryLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger.LogSubmissionFailed(context.Background(), uuid.New(), "boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "", entry["correlation_id"])
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.IncrementCounter("transaction.submission", map[string]string{"outcome": "success", "type": "expense"})
	m.IncrementCounter("transaction.submission", map[string]string{"outcome": "success", "type": "expense"})
	m.IncrementCounter("transaction.validation_failed", map[string]string{"reason": "invalid_amount"})
	m.IncrementCounter("category.created", map[string]string{"outcome": "failed"})
	m.IncrementCounter("events.published", map[string]string{"type": "transaction.created", "outcome": "success"})
	m.IncrementCounter("unknown.metric", nil)
	m.RecordProcessingTime("transaction.submission", 15*time.Millisecond)
	m.RecordGauge("funding_targets", 4, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("success", "expense")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("invalid_amount")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.categoriesCreatedTotal.WithLabelValues("failed", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublishedTotal.WithLabelValues("transaction.created", "success")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.fundingTargets))
	assert.Equal(t, 1, testutil.CollectAndCount(m.submissionDuration))
}
