// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// General API information for swag. Run `swag init -g cmd/server/docs.go`
// to generate an OpenAPI document from these and the handler annotations.
//
// @title Openday API
// @version 1.0
// @description Event recommendations, schedule conflict analysis and walking routes for a university open day.
// @description
// @description ## Visitor State
// @description
// @description The server keeps no visitor sessions. Schedules, study interests and open
// @description slots travel with each request; only anonymous popularity counters persist.
// @description
// @description ## Rate Limiting
// @description
// @description Requests are limited per client IP (default 120 per minute). `/health` is exempt.
// @description
// @description ## Response Format
// @description
// @description ```json
// @description {
// @description   "status": "success",
// @description   "data": {},
// @description   "metadata": {
// @description     "timestamp": "2026-05-09T10:00:00Z",
// @description     "query_time_ms": 3
// @description   }
// @description }
// @description ```
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8430
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and service status
//
// @tag.name Recommendations
// @tag.description Personalised event ranking and score explanations
//
// @tag.name Schedule
// @tag.description Batch adds, conflict and gap analysis, walking-time checks and calendar export
//
// @tag.name Routes
// @tag.description Walking routes between waypoints
//
// @tag.name Popularity
// @tag.description Anonymous view and schedule counters with trends
//
// @tag.name Buildings
// @tag.description Building lookup by coordinate
package main
