// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/catalog"
	"github.com/tomtom215/openday/internal/config"
	"github.com/tomtom215/openday/internal/planner"
	"github.com/tomtom215/openday/internal/popularity"
	"github.com/tomtom215/openday/internal/supervisor"
	"github.com/tomtom215/openday/internal/supervisor/services"
)

// initPlanner loads the catalogue, opens the configured popularity store
// and builds the planner. The caller owns the planner and must Close it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initPlanner(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*planner.Planner, error) {
	cat, err := catalog.Load(cfg.Catalog.Path, cfg.Planner.NearbyCellKm, logger)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := popularity.NewStoreFromConfig(ctx, &cfg.Popularity, logger)
	if err != nil {
		return nil, fmt.Errorf("open popularity store: %w", err)
	}

	tracker, err := popularity.NewTracker(store, popularity.TrackerConfigFromConfig(&cfg.Popularity), logger)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close popularity store")
		}
		return nil, fmt.Errorf("create popularity tracker: %w", err)
	}

	p, err := planner.New(cat, tracker, planner.OptionsFromConfig(cfg), logger)
	if err != nil {
		if closeErr := tracker.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close popularity tracker")
		}
		return nil, fmt.Errorf("create planner: %w", err)
	}
	return p, nil
}

// initSnapshot adds the popularity snapshot job to the background layer.
// An empty schedule disables it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initSnapshot(cfg *config.Config, p *planner.Planner, logger zerolog.Logger, tree *supervisor.SupervisorTree) error {
	if cfg.Popularity.SnapshotSchedule == "" {
		logger.Info().Msg("Popularity snapshot disabled (POPULARITY_SNAPSHOT is empty)")
		return nil
	}

	svc, err := services.NewPopularitySnapshotService(p, cfg.Popularity.SnapshotSchedule, cfg.Popularity.SnapshotTopN, logger)
	if err != nil {
		return err
	}
	tree.AddBackgroundService(svc)
	logger.Info().
		Str("schedule", cfg.Popularity.SnapshotSchedule).
		Int("top_n", cfg.Popularity.SnapshotTopN).
		Msg("Popularity snapshot added to supervisor tree")
	return nil
}
