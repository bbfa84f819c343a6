// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string             `json:"status"`
	Version           string             `json:"version"`
	Events            int                `json:"events"`
	Locations         int                `json:"locations"`
	PopularityBackend string             `json:"popularity_backend"`
	TrackedEvents     int                `json:"tracked_events"`
	DistanceCache     DistanceCacheStats `json:"distance_cache"`
	Uptime            float64            `json:"uptime_seconds"`
}

// DistanceCacheStats describes the building-pair distance memo.
type DistanceCacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// Health reports service status and catalogue size.
//
// @Summary Service health
// @Description Returns status, catalogue size, popularity backend and distance cache statistics. Not rate limited.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus} "Service is healthy"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	cat := h.planner.Catalog()
	tracker := h.planner.Tracker()
	hits, misses, entries := h.planner.Calculator().CacheStats()

	respondSuccess(w, HealthStatus{
		Status:            "healthy",
		Version:           h.version,
		Events:            len(cat.Events()),
		Locations:         len(cat.Locations()),
		PopularityBackend: tracker.Backend(),
		TrackedEvents:     tracker.TrackedEvents(),
		DistanceCache: DistanceCacheStats{
			Entries: entries,
			Hits:    hits,
			Misses:  misses,
		},
		Uptime: time.Since(h.startTime).Seconds(),
	}, start, nil)
}
