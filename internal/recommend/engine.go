// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/metrics"
	"github.com/tomtom215/openday/internal/models"
)

// cancelCheckInterval is how many candidates are scored between context checks.
const cancelCheckInterval = 32

// Engine orchestrates scoring, filtering and grouping.
type Engine struct {
	cfg        *Config
	scorer     *Scorer
	popularity PopularitySource
	logger     zerolog.Logger
}

// NewEngine creates a recommendation engine. popularity may be nil, in
// which case no event is treated as high demand unless the Context
// carries scores.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, calc *geo.Calculator, popularity PopularitySource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	return &Engine{
		cfg:        cfg,
		scorer:     NewScorer(cfg, calc),
		popularity: popularity,
		logger:     logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Score scores a single event, fetching its popularity when needed.
func (e *Engine) Score(ctx context.Context, event models.Event, rctx Context) models.EventRecommendation {
	if rctx.Popularity == nil {
		rctx.Popularity = e.fetchPopularity(ctx, []int64{event.ID})
	}
	return e.scorer.Score(event, rctx)
}

// Recommend scores candidates not already in the schedule, applies filters
// and groups the survivors. A repeated candidate ID is scored once, at its
// first position. Context cancellation is honored between candidates and
// returns the context error.
func (e *Engine) Recommend(ctx context.Context, candidates []models.Event, rctx Context, filters Filters) (Result, error) {
	start := time.Now()

	pending := make([]models.Event, 0, len(candidates))
	seen := make(map[int64]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.ID]; dup || rctx.Schedule.Contains(c.ID) {
			continue
		}
		seen[c.ID] = struct{}{}
		pending = append(pending, c)
	}

	if rctx.Popularity == nil {
		ids := make([]int64, len(pending))
		for i, c := range pending {
			ids[i] = c.ID
		}
		rctx.Popularity = e.fetchPopularity(ctx, ids)
	}

	scored := make([]models.EventRecommendation, 0, len(pending))
	for i, c := range pending {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				metrics.RecordRecommendation(len(pending), 0, time.Since(start), err)
				return Result{}, fmt.Errorf("recommendation canceled after %d candidates: %w", i, err)
			}
		}
		scored = append(scored, e.scorer.Score(c, rctx))
	}

	recs := ApplyFilters(scored, filters, e.cfg.effectiveLimit(filters.Limit))
	groups := GroupRecommendations(recs, rctx.ProgramNames)

	elapsed := time.Since(start)
	metrics.RecordRecommendation(len(pending), len(recs), elapsed, nil)

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("scored", len(scored)).
		Int("returned", len(recs)).
		Int("groups", len(groups)).
		Dur("duration", elapsed).
		Msg("Recommendations generated")

	return Result{
		Recommendations: recs,
		Groups:          groups,
		Considered:      len(scored),
	}, nil
}

// fetchPopularity degrades to an empty map when the source fails.
func (e *Engine) fetchPopularity(ctx context.Context, ids []int64) map[int64]int {
	if e.popularity == nil || len(ids) == 0 {
		return map[int64]int{}
	}
	scores, err := e.popularity.Scores(ctx, ids)
	if err != nil {
		e.logger.Warn().Err(err).Int("events", len(ids)).Msg("Popularity unavailable, scoring without demand signal")
		return map[int64]int{}
	}
	return scores
}
