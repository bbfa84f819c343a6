// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"time"

	"github.com/tomtom215/openday/internal/planner"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by resource:
//   - handlers_health.go: health status
//   - handlers_recommend.go: recommendations and single-event scores
//   - handlers_schedule.go: batch add, analysis, travel and calendar export
//   - handlers_routes.go: free-form routes
//   - handlers_popularity.go: view/add counters and rankings
//   - handlers_buildings.go: nearby buildings
type Handler struct {
	planner   *planner.Planner
	version   string
	startTime time.Time
}

// NewHandler creates a handler over p.
func NewHandler(p *planner.Planner, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		planner:   p,
		version:   version,
		startTime: time.Now(),
	}
}
