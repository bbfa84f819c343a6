// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"time"

	"github.com/tomtom215/openday/internal/models"
)

var day = time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) *time.Time {
	t := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	return &t
}

func timedEvent(id int64, c models.Category, start, end *time.Time, programs ...int64) models.Event {
	return models.Event{
		ID:              id,
		Title:           "Event",
		Category:        c,
		Start:           start,
		End:             end,
		StudyProgramIDs: programs,
	}
}

func withLocation(e models.Event, locationID int64) models.Event {
	e.LocationID = &locationID
	return e
}

func reasonTypes(rec models.EventRecommendation) []models.ReasonType {
	out := make([]models.ReasonType, len(rec.Reasons))
	for i, r := range rec.Reasons {
		out[i] = r.Type
	}
	return out
}

var testLocations = models.LocationMap{
	1: {ID: 1, Name: "Main Hall", Latitude: 52.2000, Longitude: 0.1200},
	// About 300 m north of Main Hall.
	2: {ID: 2, Name: "Science Block", Latitude: 52.2027, Longitude: 0.1200},
	// About 2,000 m north of Main Hall.
	3: {ID: 3, Name: "Sports Park", Latitude: 52.2180, Longitude: 0.1200},
}
