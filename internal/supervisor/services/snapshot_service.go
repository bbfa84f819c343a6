// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/metrics"
	"github.com/tomtom215/openday/internal/planner"
)

// PopularitySource is satisfied by *planner.Planner.
type PopularitySource interface {
	MostPopular(ctx context.Context, limit int) ([]planner.PopularEvent, error)
	PruneIdle() int
}

// PopularitySnapshotService periodically logs the most popular events and
// prunes idle trend windows.
//
// The job runs on a robfig/cron schedule inside Serve. Runs never overlap:
// a run still in progress when the next tick fires causes that tick to be
// skipped.
type PopularitySnapshotService struct {
	source   PopularitySource
	spec     string
	schedule cron.Schedule
	topN     int
	logger   zerolog.Logger
	name     string
}

// NewPopularitySnapshotService parses spec (standard five-field cron or a
// descriptor such as "@every 5m") and returns the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPopularitySnapshotService(source PopularitySource, spec string, topN int, logger zerolog.Logger) (*PopularitySnapshotService, error) {
	if source == nil {
		return nil, fmt.Errorf("popularity snapshot requires a source")
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot schedule %q: %w", spec, err)
	}
	if topN <= 0 {
		topN = 10
	}
	return &PopularitySnapshotService{
		source:   source,
		spec:     spec,
		schedule: schedule,
		topN:     topN,
		logger:   logger.With().Str("component", "popularity-snapshot").Logger(),
		name:     "popularity-snapshot",
	}, nil
}

// Serve implements suture.Service. It starts a cron runner and blocks until
// ctx is canceled, then waits for a running snapshot to finish.
func (s *PopularitySnapshotService) Serve(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		if err := s.Snapshot(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("Popularity snapshot failed")
		}
	}))

	s.logger.Info().Str("schedule", s.spec).Int("top_n", s.topN).Msg("Popularity snapshot scheduled")
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}

// Snapshot runs one snapshot: it logs the current top events and prunes
// idle trend windows.
func (s *PopularitySnapshotService) Snapshot(ctx context.Context) error {
	top, err := s.source.MostPopular(ctx, s.topN)
	if err != nil {
		metrics.RecordPopularitySnapshot(0, err)
		return fmt.Errorf("read most popular events: %w", err)
	}

	pruned := s.source.PruneIdle()
	metrics.RecordPopularitySnapshot(pruned, nil)

	arr := zerolog.Arr()
	for _, e := range top {
		arr.Dict(zerolog.Dict().
			Int64("event_id", e.EventID).
			Str("title", e.Title).
			Int("score", e.Score).
			Str("trend", string(e.Trend)))
	}
	s.logger.Info().
		Int("events", len(top)).
		Int("pruned_windows", pruned).
		Array("top", arr).
		Msg("Popularity snapshot")
	return nil
}

// String implements fmt.Stringer for supervisor logs.
func (s *PopularitySnapshotService) String() string {
	return s.name
}
