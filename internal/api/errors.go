// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/openday/internal/ics"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/planner"
	"github.com/tomtom215/openday/internal/popularity"
)

// StatusClientClosedRequest is the non-standard status logged when the
// client goes away before the response is ready.
const StatusClientClosedRequest = 499

// respondServiceError maps service errors to status codes and API codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, planner.ErrEventNotFound):
		respondError(w, http.StatusNotFound, models.ErrCodeEventNotFound, err.Error(), nil)
	case errors.Is(err, ics.ErrNoTimedEvents):
		respondError(w, http.StatusUnprocessableEntity, models.ErrCodeNoTimedEvents, err.Error(), nil)
	case errors.Is(err, popularity.ErrStoreClosed):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodePopularityUnavailable, "Popularity data is unavailable", err)
	case errors.Is(err, context.Canceled):
		respondError(w, StatusClientClosedRequest, models.ErrCodeInternal, "Request canceled", nil)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, models.ErrCodeInternal, "Request timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", err)
	}
}
