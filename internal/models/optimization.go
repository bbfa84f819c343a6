// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

import "time"

// ScheduleConflict is a pair of overlapping scheduled events.
type ScheduleConflict struct {
	EventA         int64  `json:"event_a"`
	EventB         int64  `json:"event_b"`
	TitleA         string `json:"title_a"`
	TitleB         string `json:"title_b"`
	OverlapMinutes int    `json:"overlap_minutes"`
}

// ScheduleGap is idle time between chronologically adjacent events on the
// same day.
type ScheduleGap struct {
	AfterEventID  int64     `json:"after_event_id"`
	BeforeEventID int64     `json:"before_event_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Minutes       int       `json:"minutes"`
}

// DiversityReport tallies the schedule by category label, study program
// and location name. The maps are never nil.
type DiversityReport struct {
	ByEventType        map[string]int `json:"by_event_type"`
	ByStudyProgram     map[string]int `json:"by_study_program"`
	ByLocation         map[string]int `json:"by_location"`
	DistinctCategories int            `json:"distinct_categories"`
}

// SuggestionType identifies an optimization suggestion.
type SuggestionType string

const (
	SuggestResolveConflict SuggestionType = "resolve_conflict"
	SuggestFillGap         SuggestionType = "fill_gap"
	SuggestAddDiversity    SuggestionType = "add_diversity"
)

// SuggestionAction is one concrete step a visitor can take.
type SuggestionAction struct {
	Kind    string `json:"kind"` // "remove_event", "find_event"
	EventID int64  `json:"event_id,omitempty"`
	Label   string `json:"label"`
}

// OptimizationSuggestion is a ranked improvement hint.
type OptimizationSuggestion struct {
	Type        SuggestionType     `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Benefit     int                `json:"benefit"`
	EventIDs    []int64            `json:"event_ids,omitempty"`
	Gap         *ScheduleGap       `json:"gap,omitempty"`
	Category    Category           `json:"category,omitempty"`
	Actions     []SuggestionAction `json:"actions"`
}

// ScheduleOptimizationResult is the advisor's analysis of a schedule.
type ScheduleOptimizationResult struct {
	Score       int                      `json:"score"`
	Conflicts   []ScheduleConflict       `json:"conflicts"`
	Gaps        []ScheduleGap            `json:"gaps"`
	Diversity   DiversityReport          `json:"diversity"`
	Suggestions []OptimizationSuggestion `json:"suggestions"`
}

// Trend describes recent popularity momentum.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendStable  Trend = "stable"
	TrendFalling Trend = "falling"
)

// PopularityRecord is the popularity state of one event.
type PopularityRecord struct {
	EventID int64 `json:"event_id"`
	Views   int64 `json:"views"`
	Adds    int64 `json:"adds"`
	Score   int   `json:"score"`
	Trend   Trend `json:"trend"`
}

// PopularityScore is min(100, floor((views + adds*10) / 2)).
func PopularityScore(views, adds int64) int {
	if views < 0 {
		views = 0
	}
	if adds < 0 {
		adds = 0
	}
	if adds >= 20 || views >= 200 {
		return 100
	}
	raw := (views + adds*10) / 2
	if raw > 100 {
		return 100
	}
	return int(raw)
}
