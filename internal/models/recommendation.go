// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

// ReasonType identifies the scoring rule behind a recommendation reason.
type ReasonType string

const (
	ReasonStudyProgram ReasonType = "study_program"
	ReasonEventType    ReasonType = "event_type"
	ReasonTimeFit      ReasonType = "time_fit"
	ReasonNoConflict   ReasonType = "no_conflict"
	ReasonPopularity   ReasonType = "popularity"
	ReasonDiversity    ReasonType = "diversity"
	ReasonLocation     ReasonType = "location"
	ReasonGeneral      ReasonType = "general"
)

// RecommendationReason explains one contribution to a score.
// Weight is the rule's share of its maximum points, in [0,1].
type RecommendationReason struct {
	Type    ReasonType `json:"type"`
	Message string     `json:"message"`
	Weight  float64    `json:"weight"`
}

// EventRecommendation is a scored candidate event.
type EventRecommendation struct {
	Event         Event                  `json:"event"`
	Score         int                    `json:"score"`
	Reasons       []RecommendationReason `json:"reasons"`
	HasConflict   bool                   `json:"has_conflict"`
	ConflictsWith []int64                `json:"conflicts_with,omitempty"`
	TravelSeconds *int                   `json:"travel_seconds,omitempty"`
	HighDemand    bool                   `json:"high_demand"`
}

// GroupType says what a recommendation group clusters on.
type GroupType string

const (
	GroupStudyProgram GroupType = "study_program"
	GroupEventType    GroupType = "event_type"
)

// RecommendationGroup clusters recommendations sharing a program or type.
type RecommendationGroup struct {
	Label           string                `json:"label"`
	Type            GroupType             `json:"type"`
	Recommendations []EventRecommendation `json:"recommendations"`
	AverageScore    float64               `json:"average_score"`
}
