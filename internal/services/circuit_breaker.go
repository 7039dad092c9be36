package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"personal-finance/internal/events"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// BreakerState is the state of a CircuitBreaker
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  BreakerClosed,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == BreakerOpen && time.Since(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = BreakerHalfOpen
		cb.halfOpenSuccesses = 0
		return false
	}

	return cb.state == BreakerOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = BreakerClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case BreakerClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = time.Now()

	switch cb.state {
	case BreakerHalfOpen:
		cb.state = BreakerOpen
		cb.halfOpenSuccesses = 0
	case BreakerClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = BreakerOpen
			cb.halfOpenSuccesses = 0
		}
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// GuardedPublisher stops calling an unhealthy broker until the breaker resets
type GuardedPublisher struct {
	next    EventPublisher
	breaker *CircuitBreaker
	metrics MetricsRecorderInterface
}

func NewGuardedPublisher(next EventPublisher, breaker *CircuitBreaker, metrics MetricsRecorderInterface) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker, metrics: metrics}
}

func (p *GuardedPublisher) Publish(ctx context.Context, msg *events.Message) error {
	if p.breaker.IsOpen() {
		p.metrics.IncrementCounter("events.published", map[string]string{"type": msg.Type, "outcome": "skipped"})
		return ErrCircuitBreakerOpen
	}

	if err := p.next.Publish(ctx, msg); err != nil {
		p.breaker.RecordFailure()
		p.metrics.IncrementCounter("events.published", map[string]string{"type": msg.Type, "outcome": "failed"})
		return err
	}

	p.breaker.RecordSuccess()
	p.metrics.IncrementCounter("events.published", map[string]string{"type": msg.Type, "outcome": "success"})
	return nil
}
