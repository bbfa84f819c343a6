// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"context"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
)

// Context describes the visitor a recommendation is for.
type Context struct {
	// Schedule is the visitor's current schedule.
	Schedule models.ScheduleSnapshot

	// StudyProgramIDs are the programs the visitor is interested in.
	StudyProgramIDs []int64

	// PreferredCategories are the event types the visitor prefers.
	PreferredCategories []models.Category

	// ViewedEventIDs have already been seen or dismissed.
	ViewedEventIDs []int64

	// OpenSlots are free windows the visitor wants to fill.
	OpenSlots []models.TimeWindow

	// MaxTravelSeconds is the longest acceptable walk; 0 uses the default.
	MaxTravelSeconds int

	// Profile is the walking speed for travel estimates.
	Profile geo.SpeedProfile

	// Locations resolves event buildings for travel estimates; may be nil.
	Locations models.LocationLookup

	// ProgramNames labels study-program groups.
	ProgramNames map[int64]string

	// Popularity holds pre-fetched popularity scores by event ID. The
	// Engine fills it when nil.
	Popularity map[int64]int
}

// Filters are applied after scoring.
type Filters struct {
	ExcludeConflicts bool `json:"exclude_conflicts"`
	HighDemandOnly   bool `json:"high_demand_only"`
	MinScore         int  `json:"min_score" validate:"gte=0,lte=100"`
	Limit            int  `json:"limit" validate:"gte=0,lte=100"`
}

// Result is the output of Engine.Recommend.
type Result struct {
	Recommendations []models.EventRecommendation `json:"recommendations"`
	Groups          []models.RecommendationGroup `json:"groups"`
	// Considered is the number of candidates scored.
	Considered int `json:"considered"`
}

// PopularitySource supplies popularity scores in bulk.
type PopularitySource interface {
	Scores(ctx context.Context, eventIDs []int64) (map[int64]int, error)
}
