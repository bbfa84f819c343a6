// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openday_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "openday_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_recommendations_total",
			Help: "Total recommendation runs by outcome",
		},
		[]string{"outcome"}, // "ok", "canceled"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openday_recommendation_duration_seconds",
			Help:    "Time spent scoring, filtering and grouping candidates",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openday_recommendation_candidates",
			Help:    "Number of candidate events scored per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openday_recommendations_returned",
			Help:    "Number of recommendations returned after filtering and truncation",
			Buckets: prometheus.LinearBuckets(0, 5, 11),
		},
	)

	// Route Metrics
	RouteLegsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_route_legs_total",
			Help: "Total number of route legs assembled",
		},
	)

	RouteWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_route_warnings_total",
			Help: "Route warnings emitted by severity",
		},
		[]string{"severity"}, // "info", "warning", "error"
	)

	TravelStatusTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_travel_status_total",
			Help: "Travel feasibility classifications by status",
		},
		[]string{"status"}, // "ok", "tight", "insufficient"
	)

	// Schedule Metrics
	ScheduleScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openday_schedule_score",
			Help:    "Distribution of schedule optimization scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ScheduleConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_schedule_conflicts_total",
			Help: "Total pairwise schedule conflicts detected",
		},
	)

	BatchResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_batch_results_total",
			Help: "Batch scheduling outcomes per candidate",
		},
		[]string{"outcome"}, // "added", "skipped", "conflicting"
	)

	// Popularity Metrics
	PopularityEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_popularity_events_total",
			Help: "Popularity signals recorded by kind",
		},
		[]string{"kind"}, // "view", "add"
	)

	PopularityBackendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_popularity_backend_errors_total",
			Help: "Errors returned by popularity counter backends",
		},
		[]string{"backend"},
	)

	PopularityFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_popularity_fallback_total",
			Help: "Popularity operations served by the in-memory fallback store",
		},
	)

	PopularityBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "openday_popularity_breaker_state",
			Help: "Circuit breaker state for popularity backends (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	PopularitySnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openday_popularity_snapshots_total",
			Help: "Scheduled popularity snapshot runs by result",
		},
		[]string{"result"}, // "ok", "error"
	)

	PopularityPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_popularity_pruned_windows_total",
			Help: "Idle trend windows removed by the snapshot job",
		},
	)

	// Cache Metrics
	DistanceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_distance_cache_hits_total",
			Help: "Pairwise distance memo hits",
		},
	)

	DistanceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "openday_distance_cache_misses_total",
			Help: "Pairwise distance memo misses",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation run.
func RecordRecommendation(candidates, returned int, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "canceled"
	}
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationCandidates.Observe(float64(candidates))
	if err == nil {
		RecommendationsReturned.Observe(float64(returned))
	}
}

// RecordRoute records assembled legs and warnings by severity.
func RecordRoute(legs int, warningsBySeverity map[string]int) {
	RouteLegsTotal.Add(float64(legs))
	for severity, n := range warningsBySeverity {
		RouteWarningsTotal.WithLabelValues(severity).Add(float64(n))
	}
}

// RecordTravelStatus records one travel feasibility classification.
func RecordTravelStatus(status string) {
	TravelStatusTotal.WithLabelValues(status).Inc()
}

// RecordScheduleAnalysis records an optimization run.
func RecordScheduleAnalysis(score, conflicts int) {
	ScheduleScore.Observe(float64(score))
	ScheduleConflictsTotal.Add(float64(conflicts))
}

// RecordBatch records batch scheduling outcomes.
func RecordBatch(added, skipped, conflicting int) {
	BatchResultsTotal.WithLabelValues("added").Add(float64(added))
	BatchResultsTotal.WithLabelValues("skipped").Add(float64(skipped))
	BatchResultsTotal.WithLabelValues("conflicting").Add(float64(conflicting))
}

// RecordPopularityEvent records a view or add signal.
func RecordPopularityEvent(kind string) {
	PopularityEventsTotal.WithLabelValues(kind).Inc()
}

// RecordPopularityBackendError records a failed backend operation.
func RecordPopularityBackendError(backend string) {
	PopularityBackendErrors.WithLabelValues(backend).Inc()
}

// RecordPopularityFallback records an operation served by the fallback store.
func RecordPopularityFallback() {
	PopularityFallbacks.Inc()
}

// SetBreakerState publishes a circuit breaker state (0=closed, 1=half-open, 2=open).
func SetBreakerState(name string, state int) {
	PopularityBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPopularitySnapshot records one snapshot run and the number of
// trend windows it pruned.
func RecordPopularitySnapshot(pruned int, err error) {
	if err != nil {
		PopularitySnapshots.WithLabelValues("error").Inc()
		return
	}
	PopularitySnapshots.WithLabelValues("ok").Inc()
	PopularityPruned.Add(float64(pruned))
}

// RecordDistanceCache records a distance memo lookup.
func RecordDistanceCache(hit bool) {
	if hit {
		DistanceCacheHits.Inc()
	} else {
		DistanceCacheMisses.Inc()
	}
}
