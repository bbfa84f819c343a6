// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package route

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/logging"
	"github.com/tomtom215/openday/internal/models"
)

var (
	day    = time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	origin = geo.Coordinate{Latitude: 52.2000, Longitude: 0.1200}
	// About 2,000 m north of origin.
	farNorth = geo.Coordinate{Latitude: 52.2180, Longitude: 0.1200}
	// About 300 m north of origin.
	nearNorth = geo.Coordinate{Latitude: 52.2027, Longitude: 0.1200}
)

func hm(hour, minute int) *time.Time {
	t := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &t
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := NewAssembler(nil, nil, logging.NewTestLogger(io.Discard))
	require.NoError(t, err)
	return a
}

func stop(id int64, name string, c geo.Coordinate, start, end *time.Time) models.Waypoint {
	return EventWaypoint(models.Event{ID: id, Title: name, Start: start, End: end}, name, c)
}

func TestBuildRoute_FewerThanTwoWaypoints(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	for _, wps := range [][]models.Waypoint{nil, {}, {stop(1, "Library", origin, nil, nil)}} {
		r := a.BuildRoute(wps, geo.ProfileNormal)
		assert.Empty(t, r.Legs)
		assert.Empty(t, r.Warnings)
		assert.Zero(t, r.TotalDistanceMeters)
		assert.Zero(t, r.TotalDurationSeconds)
		assert.Len(t, r.Waypoints, len(wps))
	}
}

func TestBuildRoute_ThreeWaypoints(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	wps := []models.Waypoint{
		{Name: "Entrance", Coordinates: origin, Role: models.WaypointCurrentLocation},
		stop(1, "Physics", nearNorth, hm(10, 0), hm(11, 0)),
		stop(2, "Chemistry", origin, hm(12, 0), hm(13, 0)),
	}

	r := a.BuildRoute(wps, geo.ProfileNormal)

	require.Len(t, r.Legs, 2)
	assert.InDelta(t, r.Legs[0].DistanceMeters+r.Legs[1].DistanceMeters, r.TotalDistanceMeters, 1e-9)
	assert.Equal(t, r.Legs[0].DurationSeconds+r.Legs[1].DurationSeconds, r.TotalDurationSeconds)
	assert.InDelta(t, 300, r.Legs[0].DistanceMeters, 5)
	assert.Equal(t, geo.WalkingTime(r.Legs[0].DistanceMeters, geo.ProfileNormal), r.Legs[0].DurationSeconds)

	assert.Equal(t, 0, r.Legs[0].From)
	assert.Equal(t, 1, r.Legs[0].To)
	assert.Len(t, r.Legs[0].Geometry, 2)
	require.Len(t, r.Legs[0].Steps, 2)
	assert.Contains(t, r.Legs[0].Steps[0], "Walk 300 m from Entrance to Physics")
	assert.Equal(t, "Arrive at Physics", r.Legs[0].Steps[1])
	assert.Empty(t, r.Warnings)
}

func TestBuildRoute_ProfileChangesDuration(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	wps := []models.Waypoint{stop(1, "A", origin, nil, nil), stop(2, "B", farNorth, nil, nil)}
	slow := a.BuildRoute(wps, geo.ProfileSlow)
	fast := a.BuildRoute(wps, geo.ProfileFast)

	assert.Greater(t, slow.TotalDurationSeconds, fast.TotalDurationSeconds)
	assert.Equal(t, slow.TotalDistanceMeters, fast.TotalDistanceMeters)
}

func TestBuildRoute_TimingWarnings(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	// 300 m at normal speed takes about 258 s; the buffer is 300 s.
	tests := []struct {
		name     string
		nextFrom *time.Time
		want     []models.Severity
	}{
		{"plenty of time", hm(11, 15), nil},
		{"walk fits but buffer does not", hm(11, 5), []models.Severity{models.SeverityWarning}},
		{"cannot make it", hm(11, 2), []models.Severity{models.SeverityError}},
		{"overlapping events", hm(10, 30), []models.Severity{models.SeverityError}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			end := tt.nextFrom.Add(time.Hour)
			r := a.BuildRoute([]models.Waypoint{
				stop(1, "Physics", origin, hm(10, 0), hm(11, 0)),
				stop(2, "Chemistry", nearNorth, tt.nextFrom, &end),
			}, geo.ProfileNormal)

			var got []models.Severity
			for _, w := range r.Warnings {
				got = append(got, w.Severity)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRoute_LongDistanceIsAdditive(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	r := a.BuildRoute([]models.Waypoint{
		stop(1, "Main Hall", origin, hm(10, 0), hm(11, 0)),
		stop(2, "Sports Centre", farNorth, hm(10, 30), hm(11, 30)),
	}, geo.ProfileNormal)

	require.Len(t, r.Warnings, 2)
	assert.Equal(t, models.WarningInsufficientTime, r.Warnings[0].Type)
	assert.Equal(t, models.SeverityError, r.Warnings[0].Severity)
	assert.Equal(t, models.WarningLongDistance, r.Warnings[1].Type)
	assert.Equal(t, models.SeverityInfo, r.Warnings[1].Severity)
	assert.Equal(t, map[string]int{"error": 1, "info": 1}, WarningsBySeverity(r.Warnings))
}

func TestBuildRoute_LongDistanceWithoutTimes(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	r := a.BuildRoute([]models.Waypoint{
		{Name: "Here", Coordinates: origin, Role: models.WaypointCurrentLocation},
		stop(2, "Sports Centre", farNorth, nil, nil),
	}, geo.ProfileNormal)

	require.Len(t, r.Warnings, 1)
	assert.Equal(t, models.WarningLongDistance, r.Warnings[0].Type)
}

func TestBuildRoute_MissingCoordinates(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	r := a.BuildRoute([]models.Waypoint{
		stop(1, "Library", origin, hm(10, 0), hm(11, 0)),
		stop(2, "Unknown Annex", geo.Coordinate{}, hm(10, 30), hm(11, 30)),
		stop(3, "Physics", nearNorth, hm(12, 0), hm(13, 0)),
	}, geo.ProfileNormal)

	require.Len(t, r.Legs, 2)
	assert.Zero(t, r.Legs[0].DistanceMeters)
	assert.Zero(t, r.Legs[1].DurationSeconds)
	assert.Contains(t, r.Legs[0].Steps[0], "Coordinates unavailable")
	assert.Empty(t, r.Warnings)
}

func TestNewAssembler_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.LongDistanceMeters = 0
	_, err := NewAssembler(cfg, nil, logging.NewTestLogger(io.Discard))
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Defaults.Profile = "sprint"
	_, err = NewAssembler(cfg, nil, logging.NewTestLogger(io.Discard))
	assert.Error(t, err)
}
