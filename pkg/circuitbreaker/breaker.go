package circuitbreaker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tair/storefront/pkg/logger"
)

// ErrOpen is returned while the circuit rejects calls
var ErrOpen = errors.New("circuit breaker is open")

// State represents the state of a circuit breaker
type State string

const (
	StateClosed   State = "closed"    // Normal operation
	StateOpen     State = "open"      // Blocking requests
	StateHalfOpen State = "half-open" // Testing if upstream recovered
)

// Breaker implements the circuit breaker pattern
type Breaker struct {
	name             string
	maxFailures      int
	timeout          time.Duration
	successThreshold int
	state            State
	failures         int
	lastFailureTime  time.Time
	lastStateChange  time.Time
	successCount     int
	now              func() time.Time
	mu               sync.Mutex
}

// New creates a breaker that opens after maxFailures consecutive failures and
// tries again once timeout has elapsed
func New(name string, maxFailures int, timeout time.Duration) *Breaker {
	return &Breaker{
		name:             name,
		maxFailures:      maxFailures,
		timeout:          timeout,
		successThreshold: 3,
		state:            StateClosed,
		lastStateChange:  time.Now(),
		now:              time.Now,
	}
}

// Default creates a breaker with 5 failures and a 30 second cool-down
func Default(name string) *Breaker {
	return New(name, 5, 30*time.Second)
}

// Call executes fn with circuit breaker protection
func (cb *Breaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == StateOpen && cb.now().Sub(cb.lastStateChange) > cb.timeout {
		cb.state = StateHalfOpen
		cb.successCount = 0
		logger.Logger.Info().
			Str("circuit", cb.name).
			Msg("Circuit breaker transitioning to half-open")
	}
	currentState := cb.state
	cb.mu.Unlock()

	if currentState == StateOpen {
		return fmt.Errorf("%w for %s", ErrOpen, cb.name)
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}

	return err
}

func (cb *Breaker) onFailure() {
	cb.failures++
	cb.lastFailureTime = cb.now()

	if cb.state == StateHalfOpen {
		cb.state = StateOpen
		cb.lastStateChange = cb.now()
		logger.Logger.Warn().
			Str("circuit", cb.name).
			Msg("Circuit breaker reopened after half-open failure")
	} else if cb.failures >= cb.maxFailures {
		cb.state = StateOpen
		cb.lastStateChange = cb.now()
		logger.Logger.Error().
			Str("circuit", cb.name).
			Int("failures", cb.failures).
			Int("threshold", cb.maxFailures).
			Msg("Circuit breaker opened")
	}
}

func (cb *Breaker) onSuccess() {
	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.successThreshold {
			cb.state = StateClosed
			cb.failures = 0
			cb.successCount = 0
			cb.lastStateChange = cb.now()
			logger.Logger.Info().
				Str("circuit", cb.name).
				Msg("Circuit breaker closed after successful recovery")
		}
	case StateClosed:
		cb.failures = 0
	}
}

// State returns the current state
func (cb *Breaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Stats returns circuit breaker statistics
func (cb *Breaker) Stats() map[string]interface{} {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return map[string]interface{}{
		"name":              cb.name,
		"state":             cb.state,
		"failures":          cb.failures,
		"max_failures":      cb.maxFailures,
		"last_failure_time": cb.lastFailureTime,
		"last_state_change": cb.lastStateChange,
		"time_since_change": cb.now().Sub(cb.lastStateChange).Seconds(),
	}
}
