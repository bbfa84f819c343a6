// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

import (
	"time"

	"github.com/tomtom215/openday/internal/geo"
)

// Event is an open-day event as supplied by the catalogue.
//
// Start and End are optional. An event without both is "untimed" and takes
// no part in overlap, gap or travel calculations.
type Event struct {
	ID              int64      `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Description     string     `json:"description,omitempty" yaml:"description"`
	Start           *time.Time `json:"start_time,omitempty" yaml:"start_time"`
	End             *time.Time `json:"end_time,omitempty" yaml:"end_time"`
	Category        Category   `json:"category" yaml:"category"`
	Institution     string     `json:"institution,omitempty" yaml:"institution"`
	LocationID      *int64     `json:"location_id,omitempty" yaml:"location_id"`
	StudyProgramIDs []int64    `json:"study_program_ids,omitempty" yaml:"study_program_ids"`
}

// Window returns the event's time window and whether it is fully timed.
func (e Event) Window() (TimeWindow, bool) {
	if e.Start == nil || e.End == nil {
		return TimeWindow{}, false
	}
	return TimeWindow{Start: *e.Start, End: *e.End}, true
}

// HasTimeWindow reports whether both Start and End are set.
func (e Event) HasTimeWindow() bool {
	return e.Start != nil && e.End != nil
}

// HasProgram reports whether the event is associated with programID.
func (e Event) HasProgram(programID int64) bool {
	for _, id := range e.StudyProgramIDs {
		if id == programID {
			return true
		}
	}
	return false
}

// TimeWindow is a half-open [Start, End) interval.
type TimeWindow struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether inner lies entirely within w.
func (w TimeWindow) Contains(inner TimeWindow) bool {
	return !inner.Start.Before(w.Start) && !inner.End.After(w.End)
}

// Location is a campus building.
type Location struct {
	ID                 int64   `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	ShortName          string  `json:"short_name,omitempty" yaml:"short_name"`
	Latitude           float64 `json:"latitude" yaml:"latitude"`
	Longitude          float64 `json:"longitude" yaml:"longitude"`
	Campus             string  `json:"campus,omitempty" yaml:"campus"`
	Accessible         bool    `json:"accessible" yaml:"accessible"`
	AccessibilityNotes string  `json:"accessibility_notes,omitempty" yaml:"accessibility_notes"`
	EventCount         *int    `json:"event_count,omitempty" yaml:"event_count"`
}

// Coordinate returns the building's coordinates.
func (l Location) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// DisplayName prefers the short name.
func (l Location) DisplayName() string {
	if l.ShortName != "" {
		return l.ShortName
	}
	return l.Name
}

// StudyProgram is a degree programme events can be associated with.
type StudyProgram struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Institution string `json:"institution,omitempty" yaml:"institution"`
}

// LocationLookup resolves location IDs. The catalogue implements it.
type LocationLookup interface {
	Location(id int64) (Location, bool)
}

// LocationMap is a map-backed LocationLookup.
type LocationMap map[int64]Location

// Location implements LocationLookup.
func (m LocationMap) Location(id int64) (Location, bool) {
	l, ok := m[id]
	return l, ok
}

// ResolveCoordinate returns the coordinates of the event's building, or
// false when the event has no location, the location is unknown, or it has
// no usable coordinates.
func ResolveCoordinate(lookup LocationLookup, e Event) (Location, geo.Coordinate, bool) {
	if lookup == nil || e.LocationID == nil {
		return Location{}, geo.Coordinate{}, false
	}
	loc, ok := lookup.Location(*e.LocationID)
	if !ok {
		return Location{}, geo.Coordinate{}, false
	}
	c := loc.Coordinate()
	if !c.Valid() {
		return loc, geo.Coordinate{}, false
	}
	return loc, c, true
}

// EventLookup resolves event IDs. The catalogue implements it.
type EventLookup interface {
	Event(id int64) (Event, bool)
}

// EventMap is a map-backed EventLookup.
type EventMap map[int64]Event

// Event implements EventLookup.
func (m EventMap) Event(id int64) (Event, bool) {
	e, ok := m[id]
	return e, ok
}
