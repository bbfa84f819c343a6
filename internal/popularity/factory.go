// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/config"
)

// NewStoreFromConfig builds the configured backend. Redis and Badger are
// wrapped in a ResilientStore.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreFromConfig(ctx context.Context, cfg *config.PopularityConfig, logger zerolog.Logger) (Store, error) {
	breaker := BreakerSettings{
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
	}

	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		rs, err := NewRedisStore(ctx, RedisOptions{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			PoolSize:    cfg.Redis.PoolSize,
			KeyPrefix:   cfg.Redis.KeyPrefix,
			DialTimeout: cfg.Redis.DialTimeout,
		})
		if err != nil {
			return nil, err
		}
		return NewResilientStore(rs, breaker, logger), nil
	case "badger":
		bs, err := NewBadgerStore(BadgerOptions{Path: cfg.Badger.Path, InMemory: cfg.Badger.InMemory})
		if err != nil {
			return nil, err
		}
		return NewResilientStore(bs, breaker, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// TrackerConfigFromConfig maps the service configuration.
func TrackerConfigFromConfig(cfg *config.PopularityConfig) TrackerConfig {
	return TrackerConfig{
		HighDemandThreshold: cfg.HighDemandThreshold,
		ShortWindow:         cfg.ShortWindow,
		LongWindow:          cfg.LongWindow,
		WindowBuckets:       cfg.WindowBuckets,
		RisingRatio:         cfg.RisingRatio,
		FallingRatio:        cfg.FallingRatio,
		MaxTrackedEvents:    cfg.MaxTrackedEvents,
	}
}
