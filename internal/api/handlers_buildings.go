// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
)

// defaultNearbyRadius applies when the radius parameter is omitted.
const defaultNearbyRadius = 500.0

// nearbyRequest holds the parsed query of GET /buildings/nearby.
type nearbyRequest struct {
	Lat    float64 `json:"lat" validate:"latitude"`
	Lon    float64 `json:"lon" validate:"longitude"`
	Radius float64 `json:"radius" validate:"gt=0,lte=5000"`
}

// NearbyBuildings lists buildings within radius meters of lat/lon.
//
// @Summary Nearby buildings
// @Description Lists buildings within the radius of a point, nearest first.
// @Tags Buildings
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query number false "Radius in meters (max 5000)" default(500)
// @Success 200 {object} models.APIResponse{data=[]catalog.NearbyLocation} "Buildings with distances"
// @Failure 400 {object} models.APIResponse "Invalid coordinates or radius"
// @Router /buildings/nearby [get]
func (h *Handler) NearbyBuildings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lon") == "" {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "lat and lon are required", nil)
		return
	}

	var req nearbyRequest
	var okLat, okLon, okRadius bool
	req.Lat, okLat = getFloatParam(r, "lat", 0)
	req.Lon, okLon = getFloatParam(r, "lon", 0)
	req.Radius, okRadius = getFloatParam(r, "radius", defaultNearbyRadius)
	if !okLat || !okLon || !okRadius {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "Coordinates and radius must be numeric", nil)
		return
	}
	if verr := validateRequest(&req); verr != nil {
		respondAPIError(w, http.StatusBadRequest, verr)
		return
	}

	nearby := h.planner.Nearby(geo.Coordinate{Latitude: req.Lat, Longitude: req.Lon}, req.Radius)
	respondSuccess(w, nearby, start, intPtr(len(nearby)))
}
