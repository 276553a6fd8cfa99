package services

import (
	"errors"
	"sync"
	"time"

	"transaction-insights/internal/config"
	"transaction-insights/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// CircuitBreakerConfig controls when the LLM breaker trips and recovers.
// HalfOpenMaxSucc consecutive probe successes close it again.
type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{MaxFailures: 5, ResetTimeout: 30 * time.Second, HalfOpenMaxSucc: 1}
}

// CircuitBreakerConfigFromLLM overlays the non-zero breaker settings from
// cfg onto the defaults.
func CircuitBreakerConfigFromLLM(cfg config.LLMConfig) CircuitBreakerConfig {
	out := DefaultCircuitBreakerConfig()
	out.MaxFailures = positiveOr(cfg.BreakerMaxFailures, out.MaxFailures)
	out.HalfOpenMaxSucc = positiveOr(cfg.BreakerHalfOpenSucc, out.HalfOpenMaxSucc)
	if cfg.BreakerResetTimeout > 0 {
		out.ResetTimeout = cfg.BreakerResetTimeout
	}
	return out
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker is a three-state breaker guarded by a single mutex.
// failures counts consecutive failures while closed, probes counts
// successes while half-open.
type CircuitBreaker struct {
	mu       sync.RWMutex
	cfg      CircuitBreakerConfig
	state    models.CircuitBreakerState
	failures int
	probes   int
	openedAt time.Time
	now      func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) CircuitBreakerInterface {
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

func (cb *CircuitBreaker) moveTo(state models.CircuitBreakerState) {
	cb.state = state
	cb.probes = 0
	switch state {
	case StateOpen:
		cb.openedAt = cb.now()
	case StateClosed:
		cb.failures = 0
	}
}

// IsOpen reports whether a call must be rejected. Once ResetTimeout has
// passed since the breaker opened, the next caller becomes a half-open probe.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return false
	}
	if cb.now().Sub(cb.openedAt) > cb.cfg.ResetTimeout {
		cb.moveTo(StateHalfOpen)
		return false
	}
	return true
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateHalfOpen {
		cb.failures = 0
		return
	}
	cb.probes++
	if cb.probes >= cb.cfg.HalfOpenMaxSucc {
		cb.moveTo(StateClosed)
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.moveTo(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			cb.moveTo(StateOpen)
		}
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
