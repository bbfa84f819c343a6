// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package metrics provides Prometheus instrumentation for Openday.

Collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8430/metrics

# Available Metrics

API:
  - openday_api_requests_total{method,endpoint,status}
  - openday_api_request_duration_seconds{method,endpoint}
  - openday_api_active_requests

Recommendations:
  - openday_recommendations_total{outcome}
  - openday_recommendation_duration_seconds
  - openday_recommendation_candidates
  - openday_recommendations_returned

Routes and schedules:
  - openday_route_legs_total
  - openday_route_warnings_total{severity}
  - openday_travel_status_total{status}
  - openday_schedule_score
  - openday_schedule_conflicts_total
  - openday_batch_results_total{outcome}

Popularity:
  - openday_popularity_events_total{kind}
  - openday_popularity_backend_errors_total{backend}
  - openday_popularity_fallback_total
  - openday_popularity_breaker_state{name}
  - openday_popularity_snapshots_total{result}
  - openday_popularity_pruned_windows_total

Components call the Record* helpers rather than touching collectors directly.
*/
package metrics
