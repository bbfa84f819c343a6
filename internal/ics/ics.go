// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// Package ics exports a visitor schedule as an iCalendar (RFC 5545) file.
package ics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/tomtom215/openday/internal/models"
)

// DefaultCalendarName is the X-WR-CALNAME of exported calendars.
const DefaultCalendarName = "My Open Day"

const productID = "-//Openday//Open Day Planner//EN"

// ErrNoTimedEvents is returned when nothing in the schedule has a time window.
var ErrNoTimedEvents = errors.New("schedule has no timed events to export")

// UID returns the stable calendar UID for an event.
func UID(eventID int64) string {
	return fmt.Sprintf("openday-event-%d@openday", eventID)
}

// Exporter renders schedules to iCalendar text.
type Exporter struct {
	name string
	now  func() time.Time
}

// NewExporter creates an Exporter. An empty name uses DefaultCalendarName.
func NewExporter(calendarName string) *Exporter {
	if calendarName == "" {
		calendarName = DefaultCalendarName
	}
	return &Exporter{name: calendarName, now: time.Now}
}

// Export renders the timed items of snapshot in chronological order.
// Untimed items are skipped. locations may be nil.
func (x *Exporter) Export(snapshot models.ScheduleSnapshot, locations models.LocationLookup) (string, error) {
	timed := snapshot.Timed()
	if len(timed) == 0 {
		return "", ErrNoTimedEvents
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName(x.name)

	stamp := x.now().UTC()
	for _, item := range timed {
		e := item.Event
		ve := cal.AddEvent(UID(e.ID))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.Start.UTC())
		ve.SetEndAt(e.End.UTC())
		ve.SetSummary(e.Title)
		if desc := strings.TrimSpace(e.Description); desc != "" {
			ve.SetDescription(desc)
		}
		ve.SetProperty(ical.ComponentPropertyCategories, e.Category.Label())

		if loc, coord, ok := models.ResolveCoordinate(locations, e); ok {
			ve.SetLocation(loc.Name)
			ve.SetProperty(ical.ComponentPropertyGeo, fmt.Sprintf("%.6f;%.6f", coord.Latitude, coord.Longitude))
		} else if loc.Name != "" {
			ve.SetLocation(loc.Name)
		}
	}

	return cal.Serialize(), nil
}

// Export renders snapshot with the default calendar name.
func Export(snapshot models.ScheduleSnapshot, locations models.LocationLookup) (string, error) {
	return NewExporter("").Export(snapshot, locations)
}
