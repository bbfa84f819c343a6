// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package route

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
)

func locID(id int64) *int64 { return &id }

func campus() models.LocationMap {
	return models.LocationMap{
		100: {ID: 100, Name: "Main Hall", ShortName: "MH", Latitude: origin.Latitude, Longitude: origin.Longitude},
		200: {ID: 200, Name: "Sports Centre", Latitude: farNorth.Latitude, Longitude: farNorth.Longitude},
		300: {ID: 300, Name: "Physics", Latitude: nearNorth.Latitude, Longitude: nearNorth.Longitude},
		400: {ID: 400, Name: "Annex"},
	}
}

func scheduled(id int64, loc *int64, start, end *time.Time) models.Event {
	return models.Event{ID: id, Title: "Event", Start: start, End: end, LocationID: loc, Category: models.CategoryLecture}
}

func TestAnalyzeTravelTimes_OverlapFarApart(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	snap := models.SnapshotFromEvents([]models.Event{
		scheduled(1, locID(100), hm(10, 0), hm(11, 0)),
		scheduled(2, locID(200), hm(10, 30), hm(11, 30)),
	})

	got := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{})

	require.Len(t, got, 1)
	assert.Equal(t, models.TravelInsufficient, got[0].Status)
	assert.Equal(t, -1800, got[0].AvailableSeconds)
	assert.Greater(t, got[0].WalkingSeconds, 0)
	assert.Equal(t, -1800-got[0].WalkingSeconds-300, got[0].MarginSeconds)
	assert.InDelta(t, 2000, got[0].DistanceMeters, 10)

	// Same scenario through the route assembler carries a long-distance info warning.
	wps := a.WaypointsForSchedule(snap, campus(), nil)
	r := a.BuildRoute(wps, geo.ProfileNormal)
	var types []models.WarningType
	for _, w := range r.Warnings {
		types = append(types, w.Type)
	}
	assert.Contains(t, types, models.WarningLongDistance)
}

func TestAnalyzeTravelTimes_Statuses(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	// 300 m walk at normal speed: about 258 s, plus 300 s buffer.
	tests := []struct {
		name      string
		nextStart *time.Time
		want      models.TravelStatus
	}{
		{"ok", hm(11, 30), models.TravelOK},
		{"tight", hm(11, 12), models.TravelTight},
		{"insufficient", hm(11, 5), models.TravelInsufficient},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			end := tt.nextStart.Add(time.Hour)
			snap := models.SnapshotFromEvents([]models.Event{
				scheduled(1, locID(100), hm(10, 0), hm(11, 0)),
				scheduled(2, locID(300), tt.nextStart, &end),
			})
			got := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{Profile: geo.ProfileNormal})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Status)
		})
	}
}

func TestAnalyzeTravelTimes_ExplicitZeroBuffer(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	// 300 s between events; the walk takes about 258 s.
	snap := models.SnapshotFromEvents([]models.Event{
		scheduled(1, locID(100), hm(10, 0), hm(11, 0)),
		scheduled(2, locID(300), hm(11, 5), hm(12, 0)),
	})

	defaults := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{})
	require.Len(t, defaults, 1)
	assert.Equal(t, defaults[0].AvailableSeconds-defaults[0].WalkingSeconds-300, defaults[0].MarginSeconds)
	assert.Equal(t, models.TravelInsufficient, defaults[0].Status)

	zero := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{
		BufferSeconds:     Seconds(0),
		MinWarningSeconds: Seconds(0),
	})
	require.Len(t, zero, 1)
	assert.Equal(t, 300, zero[0].AvailableSeconds)
	assert.Equal(t, zero[0].AvailableSeconds-zero[0].WalkingSeconds, zero[0].MarginSeconds)
	assert.Equal(t, models.TravelOK, zero[0].Status)

	tight := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{
		BufferSeconds:     Seconds(0),
		MinWarningSeconds: Seconds(1000),
	})
	require.Len(t, tight, 1)
	assert.Equal(t, models.TravelTight, tight[0].Status)

	// The route applies the same buffer to its no_buffer warning.
	wps := a.WaypointsForSchedule(snap, campus(), nil)
	withBuffer := a.BuildRouteWithSettings(wps, TravelOptions{})
	require.Len(t, withBuffer.Warnings, 1)
	assert.Equal(t, models.WarningNoBuffer, withBuffer.Warnings[0].Type)
	noBuffer := a.BuildRouteWithSettings(wps, TravelOptions{BufferSeconds: Seconds(0)})
	assert.Empty(t, noBuffer.Warnings)
}

func TestAnalyzeTravelTimes_SkipsUnresolvable(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	snap := models.SnapshotFromEvents([]models.Event{
		scheduled(1, locID(100), hm(9, 0), hm(10, 0)),
		scheduled(2, locID(400), hm(10, 30), hm(11, 0)), // no coordinates
		scheduled(3, nil, hm(11, 30), hm(12, 0)),        // no location
		scheduled(4, locID(300), hm(12, 30), hm(13, 0)),
		scheduled(5, locID(100), hm(14, 0), hm(15, 0)),
		scheduled(6, locID(999), hm(16, 0), hm(17, 0)), // unknown building
		{ID: 7, Title: "Untimed", LocationID: locID(100)},
	})

	got := a.AnalyzeTravelTimes(snap, campus(), TravelOptions{})
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].FromEventID)
	assert.Equal(t, int64(5), got[0].ToEventID)
}

func TestAnalyzeTravelTimes_Empty(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	got := a.AnalyzeTravelTimes(models.ScheduleSnapshot{}, campus(), TravelOptions{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWaypointsForSchedule(t *testing.T) {
	t.Parallel()
	a := newTestAssembler(t)

	snap := models.SnapshotFromEvents([]models.Event{
		scheduled(2, locID(300), hm(13, 0), hm(14, 0)),
		scheduled(1, locID(100), hm(10, 0), hm(11, 0)),
		scheduled(3, locID(999), hm(15, 0), hm(16, 0)),
	})
	start := &models.Waypoint{Coordinates: origin}

	wps := a.WaypointsForSchedule(snap, campus(), start)

	require.Len(t, wps, 3)
	assert.Equal(t, models.WaypointCurrentLocation, wps[0].Role)
	assert.Equal(t, "Current location", wps[0].Name)
	assert.Equal(t, int64(1), *wps[1].EventID)
	assert.Equal(t, "MH", wps[1].Name)
	assert.Equal(t, int64(2), *wps[2].EventID)
	assert.True(t, wps[2].IsTimedEvent())
}

func TestClassifyMargin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.TravelInsufficient, ClassifyMargin(-1, 600))
	assert.Equal(t, models.TravelTight, ClassifyMargin(0, 600))
	assert.Equal(t, models.TravelTight, ClassifyMargin(599, 600))
	assert.Equal(t, models.TravelOK, ClassifyMargin(600, 600))
}
