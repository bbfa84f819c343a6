// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package planner

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/catalog"
	"github.com/tomtom215/openday/internal/config"
	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/logging"
	"github.com/tomtom215/openday/internal/metrics"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/recommend"
	"github.com/tomtom215/openday/internal/route"
)

var day = time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) *time.Time {
	t := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &t
}

func loc(id int64) *int64 { return &id }

func testSnapshot() catalog.Snapshot {
	return catalog.Snapshot{
		Locations: []models.Location{
			{ID: 1, Name: "Main Hall", Latitude: 52.2000, Longitude: 0.1200},
			{ID: 2, Name: "Science Block", Latitude: 52.2027, Longitude: 0.1200},
			{ID: 3, Name: "Sports Park", Latitude: 52.2180, Longitude: 0.1200},
		},
		Programs: []models.StudyProgram{
			{ID: 10, Name: "History"},
			{ID: 20, Name: "Physics"},
		},
		Events: []models.Event{
			{ID: 100, Title: "Welcome Lecture", Category: models.CategoryLecture, Start: at(10, 0), End: at(11, 0), LocationID: loc(1), StudyProgramIDs: []int64{10, 20}},
			{ID: 101, Title: "Robotics Lab", Category: models.CategoryLabTour, Start: at(11, 15), End: at(12, 0), LocationID: loc(2), StudyProgramIDs: []int64{20}},
			{ID: 102, Title: "Essay Workshop", Category: models.CategoryWorkshop, Start: at(10, 30), End: at(11, 30), LocationID: loc(1), StudyProgramIDs: []int64{10}},
			{ID: 103, Title: "Stadium Tour", Category: models.CategoryCampusTour, Start: at(11, 5), End: at(11, 30), LocationID: loc(3)},
			{ID: 104, Title: "Poster Exhibition", Category: models.CategoryExhibition, LocationID: loc(1)},
		},
	}
}

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	logger := logging.NewTestLogger(io.Discard)
	cat, err := catalog.New(testSnapshot(), 0, logger)
	require.NoError(t, err)
	p, err := New(cat, nil, DefaultOptions(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestNewRequiresCatalog(t *testing.T) {
	t.Parallel()
	_, err := New(nil, nil, DefaultOptions(), logging.NewTestLogger(io.Discard))
	assert.Error(t, err)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()
	cat, err := catalog.New(testSnapshot(), 0, logging.NewTestLogger(io.Discard))
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Recommend.Limits.DefaultLimit = 0
	_, err = New(cat, nil, opts, logging.NewTestLogger(io.Discard))
	assert.Error(t, err)
}

func TestOptionsFromConfigDefaults(t *testing.T) {
	t.Parallel()
	opts := OptionsFromConfig(config.Defaults())

	require.NoError(t, opts.Recommend.Validate())
	require.NoError(t, opts.Route.Validate())
	require.NoError(t, opts.Optimize.Validate())
	assert.Equal(t, *recommend.DefaultConfig(), *opts.Recommend)
	assert.Equal(t, geo.ProfileNormal, opts.Route.Defaults.Profile)
}

func TestScheduleSkipsUnknownIDs(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	snap := p.Schedule([]int64{101, 999, 100})
	assert.Equal(t, []int64{101, 100}, snap.IDs())
}

func TestScore(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)
	ctx := context.Background()

	rec, err := p.Score(ctx, 101, Visitor{
		ScheduleIDs:     []int64{100},
		StudyProgramIDs: []int64{20},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), rec.Event.ID)
	assert.False(t, rec.HasConflict)
	assert.Positive(t, rec.Score)

	var types []models.ReasonType
	for _, r := range rec.Reasons {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, models.ReasonStudyProgram)
	assert.Contains(t, types, models.ReasonNoConflict)

	conflicting, err := p.Score(ctx, 102, Visitor{ScheduleIDs: []int64{100}})
	require.NoError(t, err)
	assert.True(t, conflicting.HasConflict)
	assert.Equal(t, []int64{100}, conflicting.ConflictsWith)

	_, err = p.Score(ctx, 999, Visitor{})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRecommend(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	result, err := p.Recommend(context.Background(), nil, Visitor{
		ScheduleIDs:     []int64{100},
		StudyProgramIDs: []int64{20},
	}, recommend.Filters{ExcludeConflicts: true})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Considered)
	for _, rec := range result.Recommendations {
		assert.NotEqual(t, int64(100), rec.Event.ID, "scheduled events are never recommended")
		assert.False(t, rec.HasConflict)
	}
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, int64(101), result.Recommendations[0].Event.ID)
}

func TestRecommendRestrictedCandidates(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	result, err := p.Recommend(context.Background(), []int64{103, 104, 999}, Visitor{}, recommend.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Considered)
}

func TestRecommendCandidateOrderAndDuplicates(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	// With no visitor context every candidate scores the same.
	result, err := p.Recommend(context.Background(), []int64{104, 103, 102, 103, 104}, Visitor{}, recommend.Filters{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Considered)

	ids := make([]int64, len(result.Recommendations))
	for i, rec := range result.Recommendations {
		ids[i] = rec.Event.ID
	}
	assert.Equal(t, []int64{102, 103, 104}, ids)
	for _, g := range result.Groups {
		assert.GreaterOrEqual(t, len(g.Recommendations), 2)
	}
}

func TestRecommendCanceled(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Recommend(ctx, nil, Visitor{}, recommend.Filters{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchAdd(t *testing.T) {
	before := testutil.ToFloat64(metrics.BatchResultsTotal.WithLabelValues("added"))
	p := newTestPlanner(t)

	result := p.BatchAdd([]int64{102, 101, 999, 101}, []int64{100}, true)

	assert.Equal(t, []int64{101}, result.Added)
	assert.Equal(t, []int64{102, 999, 101}, result.Skipped)
	require.Len(t, result.SkipReasons, 3)
	assert.Equal(t, models.SkipConflict, result.SkipReasons[0].Reason)
	assert.Equal(t, []int64{100}, result.SkipReasons[0].ConflictsWith)
	assert.Equal(t, models.SkipNotFound, result.SkipReasons[1].Reason)
	assert.Equal(t, models.SkipDuplicate, result.SkipReasons[2].Reason)

	after := testutil.ToFloat64(metrics.BatchResultsTotal.WithLabelValues("added"))
	assert.Equal(t, 1.0, after-before)
}

func TestAnalyzeSchedule(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	result := p.AnalyzeSchedule([]int64{100, 102, 999})
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, 30, result.Conflicts[0].OverlapMinutes)
	assert.Equal(t, 2, result.Diversity.DistinctCategories)
	assert.Equal(t, 2, result.Diversity.ByLocation["Main Hall"])

	empty := p.AnalyzeSchedule(nil)
	assert.Equal(t, 0, empty.Score)
}

func TestAnalyzeTravel(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	tight := p.AnalyzeTravel([]int64{101, 100}, route.TravelOptions{})
	require.Len(t, tight, 1)
	assert.Equal(t, int64(100), tight[0].FromEventID)
	assert.Equal(t, int64(101), tight[0].ToEventID)
	assert.Equal(t, 900, tight[0].AvailableSeconds)
	assert.Equal(t, models.TravelTight, tight[0].Status)

	far := p.AnalyzeTravel([]int64{100, 103}, route.TravelOptions{})
	require.Len(t, far, 1)
	assert.Equal(t, models.TravelInsufficient, far[0].Status)
	assert.Negative(t, far[0].MarginSeconds)
}

func TestRouteForSchedule(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	r := p.RouteForSchedule([]int64{100, 101, 104}, nil, route.TravelOptions{})
	require.Len(t, r.Waypoints, 2, "untimed events are not routed")
	require.Len(t, r.Legs, 1)
	assert.InDelta(t, 360, r.TotalDistanceMeters, 5)
}

func TestBuildRoute(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	r := p.BuildRoute([]models.Waypoint{
		{Name: "A", Coordinates: geo.Coordinate{Latitude: 52.2, Longitude: 0.12}, Role: models.WaypointCurrentLocation},
	}, geo.ProfileNormal)
	assert.Empty(t, r.Legs)
}

func TestExportCalendar(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	out, err := p.ExportCalendar([]int64{104, 100})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "openday-event-100@openday")
	assert.Contains(t, out, "Main Hall")

	_, err = p.ExportCalendar([]int64{104})
	assert.Error(t, err)
}

func TestPopularityFlow(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)
	ctx := context.Background()

	require.NoError(t, p.RecordView(ctx, 100))
	for i := 0; i < 3; i++ {
		require.NoError(t, p.RecordScheduled(ctx, 101))
	}
	assert.ErrorIs(t, p.RecordView(ctx, 999), ErrEventNotFound)
	assert.ErrorIs(t, p.RecordScheduled(ctx, 999), ErrEventNotFound)

	rec, err := p.Popularity(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.Adds)
	assert.Equal(t, 15, rec.Score)

	_, err = p.Popularity(ctx, 999)
	assert.ErrorIs(t, err, ErrEventNotFound)

	top, err := p.MostPopular(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(101), top[0].EventID)
	assert.Equal(t, "Robotics Lab", top[0].Title)
	assert.Equal(t, int64(100), top[1].EventID)
}

func TestNearby(t *testing.T) {
	t.Parallel()
	p := newTestPlanner(t)

	got := p.Nearby(geo.Coordinate{Latitude: 52.2000, Longitude: 0.1200}, 500)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Location.ID)
	assert.Equal(t, int64(2), got[1].Location.ID)
}
