// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"context"
	"net/http"
	"time"
)

// Ranking limits for GET /popularity/top.
const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

// RecordView counts a detail view.
//
// @Summary Record a view
// @Tags Popularity
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.PopularityRecord} "Updated popularity"
// @Failure 400 {object} models.APIResponse "Invalid event ID"
// @Failure 404 {object} models.APIResponse "Event not found"
// @Router /events/{eventID}/view [post]
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	h.recordActivity(w, r, h.planner.RecordView)
}

// RecordScheduled counts an add to a schedule.
//
// @Summary Record a schedule add
// @Tags Popularity
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.PopularityRecord} "Updated popularity"
// @Failure 400 {object} models.APIResponse "Invalid event ID"
// @Failure 404 {object} models.APIResponse "Event not found"
// @Router /events/{eventID}/scheduled [post]
func (h *Handler) RecordScheduled(w http.ResponseWriter, r *http.Request) {
	h.recordActivity(w, r, h.planner.RecordScheduled)
}

// recordActivity answers with the updated record so clients can refresh
// badges without a second call.
func (h *Handler) recordActivity(w http.ResponseWriter, r *http.Request, record func(context.Context, int64) error) {
	start := time.Now()

	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	if err := record(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	rec, err := h.planner.Popularity(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, rec, start, nil)
}

// EventPopularity returns counters and trend for one event.
//
// @Summary Get event popularity
// @Tags Popularity
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} models.APIResponse{data=models.PopularityRecord} "Counters, score and trend"
// @Failure 400 {object} models.APIResponse "Invalid event ID"
// @Failure 404 {object} models.APIResponse "Event not found"
// @Router /events/{eventID}/popularity [get]
func (h *Handler) EventPopularity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}
	rec, err := h.planner.Popularity(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, rec, start, nil)
}

// TopPopular returns the most popular events.
//
// @Summary Most popular events
// @Tags Popularity
// @Produce json
// @Param limit query int false "Number of events (1-100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} models.APIResponse{data=[]planner.PopularEvent} "Events by popularity score"
// @Failure 503 {object} models.APIResponse "Popularity store unavailable"
// @Router /popularity/top [get]
func (h *Handler) TopPopular(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := getIntParam(r, "limit", defaultTopLimit)
	if limit < 1 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	top, err := h.planner.MostPopular(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, top, start, intPtr(len(top)))
}
