// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/openday/internal/logging"
)

// calendarFilename is offered to clients saving the export.
const calendarFilename = "open-day.ics"

// BatchAdd applies several events to the visitor's schedule.
//
// @Summary Add several events
// @Description Adds candidates to the visitor's schedule in order, optionally skipping events that would conflict.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Candidates, current schedule and conflict policy"
// @Success 200 {object} models.APIResponse{data=models.BatchResult} "Added and skipped events"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Router /schedule/batch [post]
func (h *Handler) BatchAdd(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req BatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.planner.BatchAdd(req.CandidateIDs, req.ScheduleIDs, req.SkipConflicts)
	respondSuccess(w, result, start, nil)
}

// AnalyzeSchedule reports conflicts, gaps, diversity and suggestions.
//
// @Summary Analyze a schedule
// @Description Reports conflicts, gaps, diversity and improvement suggestions with an overall score.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body ScheduleRequest true "Scheduled event IDs"
// @Success 200 {object} models.APIResponse{data=models.ScheduleOptimizationResult} "Schedule analysis"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Router /schedule/analyze [post]
func (h *Handler) AnalyzeSchedule(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respondSuccess(w, h.planner.AnalyzeSchedule(req.ScheduleIDs), start, nil)
}

// AnalyzeTravel checks every transfer and returns the walking route.
//
// @Summary Check walking times
// @Description Evaluates every transfer between consecutive timed events and returns the walking route. Omitted buffer and warning thresholds use the server defaults; an explicit 0 is honored.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body TravelRequest true "Scheduled event IDs and travel settings"
// @Success 200 {object} models.APIResponse{data=TravelResponse} "Transfer analysis and route"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Router /schedule/travel [post]
func (h *Handler) AnalyzeTravel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TravelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	opts := req.options()
	analyses := h.planner.AnalyzeTravel(req.ScheduleIDs, opts)
	respondSuccess(w, TravelResponse{
		Analyses: analyses,
		Route:    h.planner.RouteForSchedule(req.ScheduleIDs, req.Start, opts),
	}, start, intPtr(len(analyses)))
}

// ExportCalendar returns the schedule as text/calendar.
//
// @Summary Export iCalendar
// @Description Renders the timed events of the schedule as an iCalendar attachment.
// @Tags Schedule
// @Accept json
// @Produce text/calendar
// @Param request body ScheduleRequest true "Scheduled event IDs"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 422 {object} models.APIResponse "No timed events in the schedule"
// @Router /schedule/ics [post]
func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	body, err := h.planner.ExportCalendar(req.ScheduleIDs)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+calendarFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write calendar export")
	}
}
