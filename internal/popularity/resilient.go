// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/openday/internal/metrics"
)

// BreakerSettings tunes the circuit breaker in front of a backend.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open.
	// Default: 1.
	MaxRequests uint32
	// Interval after which closed-state counts reset.
	// Default: 1m.
	Interval time.Duration
	// Timeout before an open breaker goes half-open.
	// Default: 30s.
	Timeout time.Duration
	// FailureThreshold is the consecutive failures that open the breaker.
	// Default: 5.
	FailureThreshold uint32
}

func (b BreakerSettings) withDefaults() BreakerSettings {
	if b.MaxRequests == 0 {
		b.MaxRequests = 1
	}
	if b.Interval == 0 {
		b.Interval = time.Minute
	}
	if b.Timeout == 0 {
		b.Timeout = 30 * time.Second
	}
	if b.FailureThreshold == 0 {
		b.FailureThreshold = 5
	}
	return b
}

// ResilientStore guards an external Store with a circuit breaker. Every
// write is mirrored into an in-memory shadow, and reads fall back to the
// shadow while the primary fails or the breaker is open. Writes never fail
// because of the primary.
type ResilientStore struct {
	primary Store
	shadow  *MemoryStore
	cb      *gobreaker.CircuitBreaker[any]
	name    string
	logger  zerolog.Logger
}

// NewResilientStore wraps primary.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResilientStore(primary Store, settings BreakerSettings, logger zerolog.Logger) *ResilientStore {
	settings = settings.withDefaults()
	name := "popularity-" + primary.Name()
	log := logger.With().Str("component", "popularity").Str("backend", primary.Name()).Logger()

	metrics.SetBreakerState(name, int(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Popularity backend breaker state change")
			metrics.SetBreakerState(name, int(to))
		},
	})

	return &ResilientStore{
		primary: primary,
		shadow:  NewMemoryStore(),
		cb:      cb,
		name:    name,
		logger:  log,
	}
}

// State returns the breaker state.
func (s *ResilientStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *ResilientStore) write(ctx context.Context, fn func(context.Context, Store) error) error {
	if err := fn(ctx, s.shadow); err != nil {
		return err
	}
	_, err := s.cb.Execute(func() (any, error) {
		return nil, fn(ctx, s.primary)
	})
	if err != nil {
		s.recordFailure(err, "write")
	}
	return nil
}

func (s *ResilientStore) recordFailure(err error, op string) {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.logger.Debug().Str("op", op).Msg("Popularity backend breaker open, using in-memory counters")
		return
	}
	metrics.RecordPopularityBackendError(s.primary.Name())
	s.logger.Warn().Err(err).Str("op", op).Msg("Popularity backend failed")
}

// IncrView increments the view counter.
func (s *ResilientStore) IncrView(ctx context.Context, eventID int64) error {
	return s.write(ctx, func(ctx context.Context, st Store) error { return st.IncrView(ctx, eventID) })
}

// IncrAdd increments the schedule-add counter.
func (s *ResilientStore) IncrAdd(ctx context.Context, eventID int64) error {
	return s.write(ctx, func(ctx context.Context, st Store) error { return st.IncrAdd(ctx, eventID) })
}

// Get reads from the primary, falling back to the shadow.
func (s *ResilientStore) Get(ctx context.Context, ids []int64) (map[int64]Counts, error) {
	res, err := s.cb.Execute(func() (any, error) {
		return s.primary.Get(ctx, ids)
	})
	if err == nil {
		if counts, ok := res.(map[int64]Counts); ok {
			return counts, nil
		}
	}
	s.recordFailure(err, "get")
	metrics.RecordPopularityFallback()
	return s.shadow.Get(ctx, ids)
}

// Top reads from the primary, falling back to the shadow.
func (s *ResilientStore) Top(ctx context.Context, limit int) ([]EventCounts, error) {
	res, err := s.cb.Execute(func() (any, error) {
		return s.primary.Top(ctx, limit)
	})
	if err == nil {
		if top, ok := res.([]EventCounts); ok {
			return top, nil
		}
	}
	s.recordFailure(err, "top")
	metrics.RecordPopularityFallback()
	return s.shadow.Top(ctx, limit)
}

// Name returns the primary backend name.
func (s *ResilientStore) Name() string { return s.primary.Name() }

// Close closes the primary and the shadow.
func (s *ResilientStore) Close() error {
	_ = s.shadow.Close()
	return s.primary.Close()
}
