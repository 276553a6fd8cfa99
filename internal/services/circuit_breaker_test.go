package services

import (
	"testing"
	"time"

	"transaction-insights/internal/config"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	cb    *CircuitBreaker
	clock time.Time
}

func TestCircuitBreakerTestSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.cb = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    10 * time.Second,
		HalfOpenMaxSucc: 2,
	}).(*CircuitBreaker)
	s.cb.now = func() time.Time { return s.clock }
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.cb.RecordFailure()
	s.cb.RecordFailure()
	s.False(s.cb.IsOpen())
	s.Equal(2, s.cb.GetFailureCount())

	s.cb.RecordFailure()
	s.True(s.cb.IsOpen())
	s.Equal(StateOpen, s.cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.cb.RecordFailure()
	s.cb.RecordFailure()
	s.cb.RecordSuccess()

	s.Zero(s.cb.GetFailureCount())
	s.cb.RecordFailure()
	s.False(s.cb.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	for i := 0; i < 3; i++ {
		s.cb.RecordFailure()
	}
	s.True(s.cb.IsOpen())

	s.clock = s.clock.Add(11 * time.Second)
	s.False(s.cb.IsOpen())
	s.Equal(StateHalfOpen, s.cb.GetState())

	s.cb.RecordSuccess()
	s.Equal(StateHalfOpen, s.cb.GetState())
	s.cb.RecordSuccess()
	s.Equal(StateClosed, s.cb.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	for i := 0; i < 3; i++ {
		s.cb.RecordFailure()
	}
	s.clock = s.clock.Add(11 * time.Second)
	s.False(s.cb.IsOpen())

	s.cb.RecordFailure()
	s.True(s.cb.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	for i := 0; i < 3; i++ {
		s.cb.RecordFailure()
	}
	s.cb.Reset()

	s.False(s.cb.IsOpen())
	s.Equal(StateClosed, s.cb.GetState())
	s.Zero(s.cb.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestConfigFromLLM() {
	cfg := CircuitBreakerConfigFromLLM(config.LLMConfig{BreakerMaxFailures: 7})
	s.Equal(7, cfg.MaxFailures)
	s.Equal(30*time.Second, cfg.ResetTimeout)
	s.Equal(1, cfg.HalfOpenMaxSucc)
}
