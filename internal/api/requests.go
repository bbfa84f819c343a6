// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/planner"
	"github.com/tomtom215/openday/internal/recommend"
	"github.com/tomtom215/openday/internal/route"
)

// VisitorRequest is the visitor state carried by recommendation requests.
type VisitorRequest struct {
	ScheduleIDs         []int64             `json:"schedule_ids" validate:"max=500"`
	StudyProgramIDs     []int64             `json:"study_program_ids" validate:"max=50"`
	PreferredCategories []models.Category   `json:"preferred_categories" validate:"max=8,dive,category"`
	ViewedEventIDs      []int64             `json:"viewed_event_ids" validate:"max=1000"`
	OpenSlots           []models.TimeWindow `json:"open_slots" validate:"max=24,dive"`
	MaxTravelSeconds    int                 `json:"max_travel_seconds" validate:"gte=0,lte=7200"`
	Profile             geo.SpeedProfile    `json:"profile" validate:"speed_profile"`
}

func (v VisitorRequest) toVisitor() planner.Visitor {
	return planner.Visitor{
		ScheduleIDs:         v.ScheduleIDs,
		StudyProgramIDs:     v.StudyProgramIDs,
		PreferredCategories: v.PreferredCategories,
		ViewedEventIDs:      v.ViewedEventIDs,
		OpenSlots:           v.OpenSlots,
		MaxTravelSeconds:    v.MaxTravelSeconds,
		Profile:             v.Profile,
	}
}

// RecommendRequest is the body of POST /recommendations.
type RecommendRequest struct {
	Visitor VisitorRequest `json:"visitor"`
	// CandidateIDs restricts the pool; empty means the whole catalogue.
	CandidateIDs []int64           `json:"candidate_ids" validate:"max=1000"`
	Filters      recommend.Filters `json:"filters"`
}

// ScoreRequest is the body of POST /recommendations/score.
type ScoreRequest struct {
	EventID int64          `json:"event_id" validate:"gt=0"`
	Visitor VisitorRequest `json:"visitor"`
}

// BatchRequest is the body of POST /schedule/batch.
type BatchRequest struct {
	CandidateIDs  []int64 `json:"candidate_ids" validate:"required,min=1,max=100"`
	ScheduleIDs   []int64 `json:"schedule_ids" validate:"max=500"`
	SkipConflicts bool    `json:"skip_conflicts"`
}

// ScheduleRequest is the body of the analyze and ics endpoints.
type ScheduleRequest struct {
	ScheduleIDs []int64 `json:"schedule_ids" validate:"max=500"`
}

// TravelRequest is the body of POST /schedule/travel.
type TravelRequest struct {
	ScheduleIDs       []int64          `json:"schedule_ids" validate:"max=500"`
	Profile           geo.SpeedProfile `json:"profile" validate:"speed_profile"`
	BufferSeconds     *int             `json:"buffer_seconds" validate:"omitempty,gte=0,lte=3600"`
	MinWarningSeconds *int             `json:"min_warning_seconds" validate:"omitempty,gte=0,lte=7200"`
	// Start prefixes the route with the visitor's position.
	Start *models.Waypoint `json:"start" validate:"omitempty"`
}

func (t TravelRequest) options() route.TravelOptions {
	return route.TravelOptions{
		Profile:           t.Profile,
		BufferSeconds:     t.BufferSeconds,
		MinWarningSeconds: t.MinWarningSeconds,
	}
}

// TravelResponse pairs the per-transfer analysis with the full route.
type TravelResponse struct {
	Analyses []models.TravelTimeAnalysis `json:"analyses"`
	Route    models.Route                `json:"route"`
}

// RouteRequest is the body of POST /routes.
type RouteRequest struct {
	Waypoints []models.Waypoint `json:"waypoints" validate:"max=50,dive"`
	Profile   geo.SpeedProfile  `json:"profile" validate:"speed_profile"`
}
