// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package schedule

import (
	"time"

	"github.com/tomtom215/openday/internal/models"
)

// OverlapMinutes returns the whole minutes (floored) shared by [startA, endA)
// and [startB, endB). Disjoint or inverted intervals yield 0.
func OverlapMinutes(startA, endA, startB, endB time.Time) int {
	latestStart := startA
	if startB.After(latestStart) {
		latestStart = startB
	}
	earliestEnd := endA
	if endB.Before(earliestEnd) {
		earliestEnd = endB
	}

	d := earliestEnd.Sub(latestStart)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

// EventOverlap returns the overlap in minutes between two events, or 0 when
// either lacks a full time window.
func EventOverlap(a, b models.Event) int {
	wa, ok := a.Window()
	if !ok {
		return 0
	}
	wb, ok := b.Window()
	if !ok {
		return 0
	}
	return OverlapMinutes(wa.Start, wa.End, wb.Start, wb.End)
}

// Conflicts returns the IDs of events in others that overlap e by at least
// one minute, in the order given. e itself is ignored.
func Conflicts(e models.Event, others []models.Event) []int64 {
	if !e.HasTimeWindow() {
		return nil
	}
	var ids []int64
	for _, o := range others {
		if o.ID == e.ID {
			continue
		}
		if EventOverlap(e, o) > 0 {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// FitsWindow reports whether the event lies entirely inside window.
func FitsWindow(e models.Event, window models.TimeWindow) bool {
	w, ok := e.Window()
	if !ok {
		return false
	}
	return window.Contains(w)
}
