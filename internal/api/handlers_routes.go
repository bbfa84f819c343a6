// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"net/http"
	"time"
)

// BuildRoute connects the given waypoints in order. Fewer than two
// waypoints yield an empty route.
//
// @Summary Build a walking route
// @Description Connects waypoints in order with legs, totals and timing warnings.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Waypoints and speed profile"
// @Success 200 {object} models.APIResponse{data=models.Route} "Route"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Router /routes [post]
func (h *Handler) BuildRoute(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RouteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	respondSuccess(w, h.planner.BuildRoute(req.Waypoints, req.Profile), start, nil)
}
