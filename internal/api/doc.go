// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package api exposes the planner over JSON/HTTP using the chi router.

Endpoints (all under /api/v1):

	GET  /health
	POST /recommendations
	POST /recommendations/score
	POST /schedule/batch
	POST /schedule/analyze
	POST /schedule/travel
	POST /schedule/ics              (text/calendar)
	POST /routes
	POST /events/{eventID}/view
	POST /events/{eventID}/scheduled
	GET  /events/{eventID}/popularity
	GET  /popularity/top?limit=
	GET  /buildings/nearby?lat=&lon=&radius=

Prometheus metrics are served at /metrics.

Every JSON response uses the models.APIResponse envelope. Request bodies
are decoded with goccy/go-json, reject unknown fields, and are validated
with internal/validation before reaching the planner. Service errors map
to status codes in errors.go:

  - planner.ErrEventNotFound: 404 EVENT_NOT_FOUND
  - ics.ErrNoTimedEvents: 422 NO_TIMED_EVENTS
  - popularity.ErrStoreClosed: 503 POPULARITY_UNAVAILABLE
  - anything else: 500 INTERNAL_ERROR

The server is stateless: visitor schedules travel in each request.
*/
package api
