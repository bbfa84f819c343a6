// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

import (
	"sort"
)

// ScheduledItem is an event in a visitor's schedule.
type ScheduledItem struct {
	Event Event `json:"event"`
	// Priority orders items the visitor cares about most; lower is higher.
	Priority int `json:"priority"`
	// Order is the insertion position within the schedule.
	Order int `json:"order"`
}

// ScheduleSnapshot is an immutable view of a visitor's schedule, built once
// per request and shared by every engine component.
//
// Items are unique by event ID; when the input repeats an ID the first
// occurrence wins.
type ScheduleSnapshot struct {
	items      []ScheduledItem
	ids        map[int64]int // event ID -> index into items
	categories map[Category]int
	programs   map[int64]int
	timed      []ScheduledItem
	duplicates []int64
}

// NewScheduleSnapshot builds a snapshot from items in insertion order.
// Order is reassigned to the position in the deduplicated list.
func NewScheduleSnapshot(items []ScheduledItem) ScheduleSnapshot {
	s := ScheduleSnapshot{
		items:      make([]ScheduledItem, 0, len(items)),
		ids:        make(map[int64]int, len(items)),
		categories: make(map[Category]int),
		programs:   make(map[int64]int),
	}

	for _, item := range items {
		if _, dup := s.ids[item.Event.ID]; dup {
			s.duplicates = append(s.duplicates, item.Event.ID)
			continue
		}
		item.Order = len(s.items)
		s.ids[item.Event.ID] = len(s.items)
		s.items = append(s.items, item)

		s.categories[item.Event.Category]++
		for _, p := range item.Event.StudyProgramIDs {
			s.programs[p]++
		}
		if item.Event.HasTimeWindow() {
			s.timed = append(s.timed, item)
		}
	}

	sort.SliceStable(s.timed, func(i, j int) bool {
		a, b := s.timed[i].Event, s.timed[j].Event
		if !a.Start.Equal(*b.Start) {
			return a.Start.Before(*b.Start)
		}
		return a.End.Before(*b.End)
	})

	return s
}

// SnapshotFromEvents builds a snapshot with default priorities.
func SnapshotFromEvents(events []Event) ScheduleSnapshot {
	items := make([]ScheduledItem, len(events))
	for i, e := range events {
		items[i] = ScheduledItem{Event: e, Priority: i}
	}
	return NewScheduleSnapshot(items)
}

// Len returns the number of unique items.
func (s ScheduleSnapshot) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the schedule has no items.
func (s ScheduleSnapshot) IsEmpty() bool {
	return len(s.items) == 0
}

// Items returns a copy of the items in insertion order.
func (s ScheduleSnapshot) Items() []ScheduledItem {
	out := make([]ScheduledItem, len(s.items))
	copy(out, s.items)
	return out
}

// Events returns the scheduled events in insertion order.
func (s ScheduleSnapshot) Events() []Event {
	out := make([]Event, len(s.items))
	for i, item := range s.items {
		out[i] = item.Event
	}
	return out
}

// IDs returns the scheduled event IDs in insertion order.
func (s ScheduleSnapshot) IDs() []int64 {
	out := make([]int64, len(s.items))
	for i, item := range s.items {
		out[i] = item.Event.ID
	}
	return out
}

// Contains reports whether eventID is scheduled.
func (s ScheduleSnapshot) Contains(eventID int64) bool {
	_, ok := s.ids[eventID]
	return ok
}

// Get returns the scheduled item for eventID.
func (s ScheduleSnapshot) Get(eventID int64) (ScheduledItem, bool) {
	i, ok := s.ids[eventID]
	if !ok {
		return ScheduledItem{}, false
	}
	return s.items[i], true
}

// HasCategory reports whether any scheduled event has category c.
func (s ScheduleSnapshot) HasCategory(c Category) bool {
	return s.categories[c] > 0
}

// CategoryCount returns how many scheduled events have category c.
func (s ScheduleSnapshot) CategoryCount(c Category) int {
	return s.categories[c]
}

// HasProgram reports whether any scheduled event belongs to programID.
func (s ScheduleSnapshot) HasProgram(programID int64) bool {
	return s.programs[programID] > 0
}

// Timed returns the fully timed items sorted by start, then end.
func (s ScheduleSnapshot) Timed() []ScheduledItem {
	out := make([]ScheduledItem, len(s.timed))
	copy(out, s.timed)
	return out
}

// Duplicates returns IDs dropped during construction because they repeated
// an earlier item.
func (s ScheduleSnapshot) Duplicates() []int64 {
	return append([]int64(nil), s.duplicates...)
}

// With returns a new snapshot with events appended.
func (s ScheduleSnapshot) With(events ...Event) ScheduleSnapshot {
	items := s.Items()
	for _, e := range events {
		items = append(items, ScheduledItem{Event: e, Priority: len(items)})
	}
	return NewScheduleSnapshot(items)
}

// BatchResult reports the outcome of adding several events at once.
type BatchResult struct {
	Added            []int64      `json:"added"`
	Skipped          []int64      `json:"skipped"`
	Conflicting      []int64      `json:"conflicting"`
	AddedCount       int          `json:"added_count"`
	SkippedCount     int          `json:"skipped_count"`
	ConflictingCount int          `json:"conflicting_count"`
	SkipReasons      []SkipReason `json:"skip_reasons,omitempty"`
}

// SkipReasonCode explains why a batch candidate was not added.
type SkipReasonCode string

const (
	SkipConflict         SkipReasonCode = "conflict"
	SkipAlreadyScheduled SkipReasonCode = "already_scheduled"
	SkipDuplicate        SkipReasonCode = "duplicate_in_batch"
	SkipNotFound         SkipReasonCode = "not_found"
)

// SkipReason records a skipped candidate.
type SkipReason struct {
	EventID       int64          `json:"event_id"`
	Reason        SkipReasonCode `json:"reason"`
	ConflictsWith []int64        `json:"conflicts_with,omitempty"`
}
