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

// Recommend ranks catalogue events for the visitor.
//
// @Summary Recommend events
// @Description Scores candidate events (or the whole catalogue) for the visitor, applies filters and groups the results by study program and event type.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Visitor context, candidates and filters"
// @Success 200 {object} models.APIResponse{data=recommend.Result} "Ranked recommendations"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 504 {object} models.APIResponse "Request timed out"
// @Router /recommendations [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.planner.Recommend(r.Context(), req.CandidateIDs, req.Visitor.toVisitor(), req.Filters)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Int("considered", result.Considered).
		Int("returned", len(result.Recommendations)).
		Msg("Recommendations served")

	respondSuccess(w, result, start, intPtr(len(result.Recommendations)))
}

// Score explains the score of one event for the visitor.
//
// @Summary Score one event
// @Description Returns the score, reasons and conflicts of a single catalogue event for the visitor.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "Event ID and visitor context"
// @Success 200 {object} models.APIResponse{data=models.EventRecommendation} "Scored event"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 404 {object} models.APIResponse "Event not found"
// @Router /recommendations/score [post]
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ScoreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.planner.Score(r.Context(), req.EventID, req.Visitor.toVisitor())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, rec, start, nil)
}
