package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	submissionsTotal       *prometheus.CounterVec
	submissionDuration     prometheus.Histogram
	validationFailures     *prometheus.CounterVec
	categoriesCreatedTotal *prometheus.CounterVec
	eventsPublishedTotal   *prometheus.CounterVec
	fundingTargets         prometheus.Gauge
}

// NewPrometheusMetrics registers the workflow metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		submissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_submissions_total",
				Help: "Total number of transaction submissions by outcome",
			},
			[]string{"outcome", "type"},
		),
		submissionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_submission_duration_milliseconds",
				Help:    "Transaction store create duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		validationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_validation_failures_total",
				Help: "Total number of rejected transaction drafts by reason",
			},
			[]string{"reason"},
		),
		categoriesCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categories_created_total",
				Help: "Total number of category creations by outcome",
			},
			[]string{"outcome", "type"},
		),
		eventsPublishedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "Total number of domain events handed to the broker",
			},
			[]string{"type", "outcome"},
		),
		fundingTargets: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "funding_targets_last_listed",
				Help: "Number of funding targets returned by the last listing",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.submission":
		m.submissionsTotal.WithLabelValues(tags["outcome"], tags["type"]).Inc()
	case "transaction.validation_failed":
		m.validationFailures.WithLabelValues(tags["reason"]).Inc()
	case "category.created":
		m.categoriesCreatedTotal.WithLabelValues(tags["outcome"], tags["type"]).Inc()
	case "events.published":
		m.eventsPublishedTotal.WithLabelValues(tags["type"], tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.submission":
		m.submissionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "funding_targets":
		m.fundingTargets.Set(value)
	}
}
