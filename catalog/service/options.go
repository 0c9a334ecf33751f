package service

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
)

var (
	ErrNilRepository       = errors.New("repository must not be nil")
	ErrNilClock            = errors.New("clock must not be nil")
	ErrNilLogger           = errors.New("logger must not be nil")
	ErrNilJournal          = errors.New("journal must not be nil")
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
	ErrNoJournal           = errors.New("operation needs a journal")
)

// Clock returns the current time.
type Clock func() time.Time

// Option configures any of the services.
type Option func(*settings) error

type settings struct {
	clock            Clock
	logger           shell.Logger
	journal          *shell.Journal
	metricsCollector shell.MetricsCollector
	policy           core.LoanPolicy
}

func newSettings(options []Option) (settings, error) {
	s := settings{
		clock:  time.Now,
		policy: core.DefaultLoanPolicy(),
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return settings{}, err
		}
	}

	return s, nil
}

// WithClock replaces time.Now, mostly for tests and demos.
func WithClock(clock Clock) Option {
	return func(s *settings) error {
		if clock == nil {
			return ErrNilClock
		}

		s.clock = clock

		return nil
	}
}

func WithLogger(logger shell.Logger) Option {
	return func(s *settings) error {
		if logger == nil {
			return ErrNilLogger
		}

		s.logger = logger

		return nil
	}
}

// WithJournal records a domain event for every state change and every rejected loan.
func WithJournal(journal *shell.Journal) Option {
	return func(s *settings) error {
		if journal == nil {
			return ErrNilJournal
		}

		s.journal = journal

		return nil
	}
}

func WithMetrics(collector shell.MetricsCollector) Option {
	return func(s *settings) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		s.metricsCollector = collector

		return nil
	}
}

// WithLoanPolicy overrides core.DefaultLoanPolicy.
func WithLoanPolicy(policy core.LoanPolicy) Option {
	return func(s *settings) error {
		s.policy = policy

		return nil
	}
}
