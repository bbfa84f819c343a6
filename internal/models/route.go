// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

import (
	"time"

	"github.com/tomtom215/openday/internal/geo"
)

// WaypointRole distinguishes event stops from the visitor's position.
type WaypointRole string

const (
	WaypointEvent           WaypointRole = "event"
	WaypointCurrentLocation WaypointRole = "current_location"
)

// Waypoint is a named stop on a route.
type Waypoint struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Coordinates geo.Coordinate `json:"coordinates"`
	Role        WaypointRole   `json:"role" validate:"omitempty,oneof=event current_location"`

	// Event stop fields; empty for the current-location marker.
	EventID    *int64     `json:"event_id,omitempty"`
	EventTitle string     `json:"event_title,omitempty"`
	Start      *time.Time `json:"start_time,omitempty"`
	End        *time.Time `json:"end_time,omitempty"`
}

// IsTimedEvent reports whether the waypoint is an event stop with a full
// time window.
func (w Waypoint) IsTimedEvent() bool {
	return w.Role == WaypointEvent && w.Start != nil && w.End != nil
}

// RouteLeg is the directed segment between two consecutive waypoints.
type RouteLeg struct {
	From            int              `json:"from"`
	To              int              `json:"to"`
	DistanceMeters  float64          `json:"distance_meters"`
	DurationSeconds int              `json:"duration_seconds"`
	Geometry        []geo.Coordinate `json:"geometry"`
	Steps           []string         `json:"steps"`
}

// Severity grades a route warning.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// WarningType identifies the rule that produced a route warning.
type WarningType string

const (
	WarningInsufficientTime WarningType = "insufficient_time"
	WarningNoBuffer         WarningType = "no_buffer"
	WarningLongDistance     WarningType = "long_distance"
)

// RouteWarning flags a leg the visitor should look at.
type RouteWarning struct {
	Type     WarningType `json:"type"`
	Severity Severity    `json:"severity"`
	LegIndex int         `json:"leg_index"`
	Message  string      `json:"message"`
}

// Route is an ordered walk through waypoints. It has exactly
// len(Waypoints)-1 legs, or none when fewer than two waypoints are given.
type Route struct {
	Waypoints            []Waypoint     `json:"waypoints"`
	Legs                 []RouteLeg     `json:"legs"`
	TotalDistanceMeters  float64        `json:"total_distance_meters"`
	TotalDurationSeconds int            `json:"total_duration_seconds"`
	Warnings             []RouteWarning `json:"warnings"`
}

// TravelStatus classifies a transfer between consecutive events.
type TravelStatus string

const (
	TravelOK           TravelStatus = "ok"
	TravelTight        TravelStatus = "tight"
	TravelInsufficient TravelStatus = "insufficient"
)

// TravelTimeAnalysis evaluates the walk between two consecutive events.
type TravelTimeAnalysis struct {
	FromEventID      int64        `json:"from_event_id"`
	ToEventID        int64        `json:"to_event_id"`
	FromTitle        string       `json:"from_title"`
	ToTitle          string       `json:"to_title"`
	DistanceMeters   float64      `json:"distance_meters"`
	WalkingSeconds   int          `json:"walking_seconds"`
	AvailableSeconds int          `json:"available_seconds"`
	MarginSeconds    int          `json:"margin_seconds"`
	Status           TravelStatus `json:"status"`
}
