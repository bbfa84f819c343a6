// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/catalog"
	"github.com/tomtom215/openday/internal/logging"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/planner"
	"github.com/tomtom215/openday/internal/recommend"
)

var day = time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) *time.Time {
	t := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &t
}

func loc(id int64) *int64 { return &id }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Snapshot{
		Locations: []models.Location{
			{ID: 1, Name: "Main Hall", Latitude: 52.2000, Longitude: 0.1200},
			{ID: 2, Name: "Science Block", Latitude: 52.2027, Longitude: 0.1200},
			{ID: 3, Name: "Sports Park", Latitude: 52.2180, Longitude: 0.1200},
		},
		Programs: []models.StudyProgram{{ID: 10, Name: "History"}, {ID: 20, Name: "Physics"}},
		Events: []models.Event{
			{ID: 100, Title: "Welcome Lecture", Category: models.CategoryLecture, Start: at(10, 0), End: at(11, 0), LocationID: loc(1), StudyProgramIDs: []int64{10, 20}},
			{ID: 101, Title: "Robotics Lab", Category: models.CategoryLabTour, Start: at(11, 15), End: at(12, 0), LocationID: loc(2), StudyProgramIDs: []int64{20}},
			{ID: 102, Title: "Essay Workshop", Category: models.CategoryWorkshop, Start: at(10, 30), End: at(11, 30), LocationID: loc(1)},
			{ID: 103, Title: "Stadium Tour", Category: models.CategoryCampusTour, Start: at(11, 5), End: at(11, 30), LocationID: loc(3)},
			{ID: 104, Title: "Poster Exhibition", Category: models.CategoryExhibition, LocationID: loc(1)},
		},
	}, 0, logging.NewTestLogger(io.Discard))
	require.NoError(t, err)
	return cat
}

func newTestServer(t *testing.T, cfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	p, err := planner.New(testCatalog(t), nil, planner.DefaultOptions(), logging.NewTestLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(p, "test"), cfg).Setup()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec, nil)
	assert.Equal(t, "error", env.Status)
	require.NotNil(t, env.Error)
	assert.Equal(t, code, env.Error.Code)
	return env
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var health HealthStatus
	env := decode(t, rec, &health)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, 5, health.Events)
	assert.Equal(t, 3, health.Locations)
	assert.Equal(t, "memory", health.PopularityBackend)
	assert.Zero(t, health.TrackedEvents)
	assert.Zero(t, health.DistanceCache.Entries)

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/events/101/view", "").Code)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/schedule/travel", `{"schedule_ids": [100, 101]}`).Code)

	decode(t, do(t, h, http.MethodGet, "/api/v1/health", ""), &health)
	assert.Equal(t, 1, health.TrackedEvents)
	assert.Equal(t, 1, health.DistanceCache.Entries)
	assert.Positive(t, health.DistanceCache.Misses)
}

func TestRecommend(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/recommendations", `{
		"visitor": {"schedule_ids": [100], "study_program_ids": [20]},
		"filters": {"exclude_conflicts": true, "limit": 2}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result recommend.Result
	env := decode(t, rec, &result)
	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 2)
	assert.Equal(t, int64(101), result.Recommendations[0].Event.ID)
	require.NotNil(t, env.Metadata.Count)
	assert.Equal(t, len(result.Recommendations), *env.Metadata.Count)
	for _, r := range result.Recommendations {
		assert.NotEqual(t, int64(100), r.Event.ID)
		assert.NotEqual(t, int64(102), r.Event.ID, "conflicting events are filtered")
	}
}

func TestRecommendBadRequests(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	tests := []struct {
		name  string
		body  string
		code  string
		field string
	}{
		{name: "malformed json", body: `{"visitor":`, code: models.ErrCodeInvalidJSON},
		{name: "unknown field", body: `{"surprise": true}`, code: models.ErrCodeInvalidJSON},
		{name: "limit too large", body: `{"filters": {"limit": 500}}`, code: models.ErrCodeValidation, field: "limit"},
		{name: "unknown category", body: `{"visitor": {"preferred_categories": ["party"]}}`, code: models.ErrCodeValidation},
		{name: "unknown profile", body: `{"visitor": {"profile": "sprint"}}`, code: models.ErrCodeValidation, field: "profile"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := requireError(t, do(t, h, http.MethodPost, "/api/v1/recommendations", tt.body), http.StatusBadRequest, tt.code)
			if tt.field != "" {
				assert.Equal(t, tt.field, env.Error.Details["field"])
			}
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/recommendations/score", `{"event_id": 102, "visitor": {"schedule_ids": [100]}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var scored models.EventRecommendation
	decode(t, rec, &scored)
	assert.True(t, scored.HasConflict)
	assert.Equal(t, []int64{100}, scored.ConflictsWith)

	requireError(t, do(t, h, http.MethodPost, "/api/v1/recommendations/score", `{"event_id": 999}`), http.StatusNotFound, models.ErrCodeEventNotFound)
	requireError(t, do(t, h, http.MethodPost, "/api/v1/recommendations/score", `{"event_id": 0}`), http.StatusBadRequest, models.ErrCodeValidation)
}

func TestScheduleBatch(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/schedule/batch", `{"candidate_ids": [102, 101], "schedule_ids": [100], "skip_conflicts": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.BatchResult
	decode(t, rec, &result)
	assert.Equal(t, []int64{101}, result.Added)
	assert.Equal(t, []int64{102}, result.Skipped)

	requireError(t, do(t, h, http.MethodPost, "/api/v1/schedule/batch", `{"candidate_ids": []}`), http.StatusBadRequest, models.ErrCodeValidation)
}

func TestScheduleAnalyze(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/schedule/analyze", `{"schedule_ids": [100, 102]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.ScheduleOptimizationResult
	decode(t, rec, &result)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, 30, result.Conflicts[0].OverlapMinutes)
	assert.NotEmpty(t, result.Suggestions)
}

func TestScheduleTravel(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/schedule/travel", `{
		"schedule_ids": [100, 101],
		"start": {"name": "Car park", "coordinates": {"lat": 52.1990, "lon": 0.1200}}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result TravelResponse
	decode(t, rec, &result)
	require.Len(t, result.Analyses, 1)
	assert.Equal(t, models.TravelTight, result.Analyses[0].Status)
	require.Len(t, result.Route.Waypoints, 3)
	assert.Equal(t, models.WaypointCurrentLocation, result.Route.Waypoints[0].Role)
	assert.Len(t, result.Route.Legs, 2)

	// Explicit zeros replace the defaults instead of falling back to them.
	rec = do(t, h, http.MethodPost, "/api/v1/schedule/travel", `{
		"schedule_ids": [100, 101],
		"buffer_seconds": 0,
		"min_warning_seconds": 0
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var zero TravelResponse
	decode(t, rec, &zero)
	require.Len(t, zero.Analyses, 1)
	a := zero.Analyses[0]
	assert.Equal(t, a.AvailableSeconds-a.WalkingSeconds, a.MarginSeconds)
	assert.Equal(t, models.TravelOK, a.Status)

	requireError(t, do(t, h, http.MethodPost, "/api/v1/schedule/travel", `{"buffer_seconds": -1}`), http.StatusBadRequest, models.ErrCodeValidation)
}

func TestScheduleICS(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/schedule/ics", `{"schedule_ids": [100, 101, 104]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/calendar"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "open-day.ics")
	body := rec.Body.String()
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))

	requireError(t, do(t, h, http.MethodPost, "/api/v1/schedule/ics", `{"schedule_ids": [104]}`), http.StatusUnprocessableEntity, models.ErrCodeNoTimedEvents)
}

func TestBuildRoute(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/routes", `{
		"profile": "fast",
		"waypoints": [
			{"name": "Main Hall", "coordinates": {"lat": 52.2000, "lon": 0.1200}},
			{"name": "Science Block", "coordinates": {"lat": 52.2027, "lon": 0.1200}}
		]
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var r models.Route
	decode(t, rec, &r)
	require.Len(t, r.Legs, 1)
	assert.InDelta(t, 360, r.TotalDistanceMeters, 5)

	empty := do(t, h, http.MethodPost, "/api/v1/routes", `{"waypoints": []}`)
	require.Equal(t, http.StatusOK, empty.Code)
	var none models.Route
	decode(t, empty, &none)
	assert.Empty(t, none.Legs)

	requireError(t, do(t, h, http.MethodPost, "/api/v1/routes", `{"waypoints": [{"name": "", "coordinates": {"lat": 0, "lon": 0}}]}`), http.StatusBadRequest, models.ErrCodeValidation)
	requireError(t, do(t, h, http.MethodPost, "/api/v1/routes", `{"waypoints": [{"name": "X", "coordinates": {"lat": 95, "lon": 0}}]}`), http.StatusBadRequest, models.ErrCodeValidation)
}

func TestPopularityEndpoints(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/events/100/view", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var record models.PopularityRecord
	decode(t, rec, &record)
	assert.Equal(t, int64(1), record.Views)

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/events/101/scheduled", "").Code)
	}

	rec = do(t, h, http.MethodGet, "/api/v1/events/101/popularity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &record)
	assert.Equal(t, int64(2), record.Adds)
	assert.Equal(t, 10, record.Score)

	rec = do(t, h, http.MethodGet, "/api/v1/popularity/top?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var top []planner.PopularEvent
	decode(t, rec, &top)
	require.Len(t, top, 1)
	assert.Equal(t, int64(101), top[0].EventID)
	assert.Equal(t, "Robotics Lab", top[0].Title)

	requireError(t, do(t, h, http.MethodPost, "/api/v1/events/abc/view", ""), http.StatusBadRequest, models.ErrCodeValidation)
	requireError(t, do(t, h, http.MethodPost, "/api/v1/events/999/view", ""), http.StatusNotFound, models.ErrCodeEventNotFound)
	requireError(t, do(t, h, http.MethodGet, "/api/v1/events/999/popularity", ""), http.StatusNotFound, models.ErrCodeEventNotFound)
}

func TestNearbyBuildings(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/buildings/nearby?lat=52.2&lon=0.12&radius=500", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var nearby []catalog.NearbyLocation
	decode(t, rec, &nearby)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Main Hall", nearby[0].Location.Name)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing lon", query: "lat=52.2"},
		{name: "non numeric", query: "lat=north&lon=0.12"},
		{name: "latitude out of range", query: "lat=91&lon=0.12"},
		{name: "radius too large", query: "lat=52.2&lon=0.12&radius=10000"},
		{name: "negative radius", query: "lat=52.2&lon=0.12&radius=-5"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requireError(t, do(t, h, http.MethodGet, "/api/v1/buildings/nearby?"+tt.query, ""), http.StatusBadRequest, models.ErrCodeValidation)
		})
	}
}

func TestRoutingErrors(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	requireError(t, do(t, h, http.MethodGet, "/api/v1/nowhere", ""), http.StatusNotFound, models.ErrCodeNotFound)
	requireError(t, do(t, h, http.MethodGet, "/api/v1/routes", ""), http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	do(t, h, http.MethodGet, "/api/v1/health", "")
	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openday_api_requests_total")
}
