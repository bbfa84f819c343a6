// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package route

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
)

// Assembler builds routes and travel analyses. It is safe for concurrent use.
type Assembler struct {
	cfg    *Config
	calc   *geo.Calculator
	logger zerolog.Logger
}

// NewAssembler creates an Assembler. A nil cfg uses DefaultConfig and a nil
// calc uses the package constants.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAssembler(cfg *Config, calc *geo.Calculator, logger zerolog.Logger) (*Assembler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route config: %w", err)
	}
	if calc == nil {
		calc = geo.NewCalculator(geo.DefaultCalculatorConfig())
	}
	return &Assembler{
		cfg:    cfg,
		calc:   calc,
		logger: logger.With().Str("component", "route").Logger(),
	}, nil
}

// BuildRoute builds a route through waypoints at the given walking speed
// using the default safety buffer.
func (a *Assembler) BuildRoute(waypoints []models.Waypoint, profile geo.SpeedProfile) models.Route {
	return a.BuildRouteWithSettings(waypoints, TravelOptions{Profile: profile})
}

// BuildRouteWithSettings builds a route with explicit travel settings.
// Fewer than two waypoints yields an empty route.
func (a *Assembler) BuildRouteWithSettings(waypoints []models.Waypoint, opts TravelOptions) models.Route {
	settings := a.cfg.withDefaults(opts)

	route := models.Route{
		Waypoints: append([]models.Waypoint{}, waypoints...),
		Legs:      []models.RouteLeg{},
		Warnings:  []models.RouteWarning{},
	}
	if len(waypoints) < 2 {
		return route
	}

	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]
		leg := a.buildLeg(i, from, to, settings.Profile)

		route.Legs = append(route.Legs, leg)
		route.TotalDistanceMeters += leg.DistanceMeters
		route.TotalDurationSeconds += leg.DurationSeconds
		route.Warnings = append(route.Warnings, a.checkLeg(i, from, to, leg, settings.BufferSeconds)...)
	}

	a.logger.Debug().
		Int("waypoints", len(waypoints)).
		Int("legs", len(route.Legs)).
		Float64("distance_m", route.TotalDistanceMeters).
		Int("warnings", len(route.Warnings)).
		Msg("route assembled")

	return route
}

func (a *Assembler) buildLeg(i int, from, to models.Waypoint, profile geo.SpeedProfile) models.RouteLeg {
	leg := models.RouteLeg{
		From:     i,
		To:       i + 1,
		Geometry: []geo.Coordinate{},
	}

	if !from.Coordinates.Valid() || !to.Coordinates.Valid() {
		leg.Steps = []string{
			fmt.Sprintf("Coordinates unavailable between %s and %s; distance not estimated", from.Name, to.Name),
			fmt.Sprintf("Arrive at %s", to.Name),
		}
		return leg
	}

	leg.DistanceMeters, leg.DurationSeconds = a.calc.TravelTime(from.Coordinates, to.Coordinates, profile)
	leg.Geometry = []geo.Coordinate{from.Coordinates, to.Coordinates}
	leg.Steps = []string{
		fmt.Sprintf("Walk %s from %s to %s (about %s)",
			formatDistance(leg.DistanceMeters), from.Name, to.Name, formatDuration(leg.DurationSeconds)),
		fmt.Sprintf("Arrive at %s", to.Name),
	}
	return leg
}

// WaypointsForSchedule derives event waypoints in chronological order,
// prefixed by start when given. Events whose building cannot be resolved
// are skipped.
func (a *Assembler) WaypointsForSchedule(snapshot models.ScheduleSnapshot, locations models.LocationLookup, start *models.Waypoint) []models.Waypoint {
	var waypoints []models.Waypoint
	if start != nil {
		marker := *start
		marker.Role = models.WaypointCurrentLocation
		if marker.Name == "" {
			marker.Name = "Current location"
		}
		waypoints = append(waypoints, marker)
	}

	for _, item := range snapshot.Timed() {
		loc, coord, ok := models.ResolveCoordinate(locations, item.Event)
		if !ok {
			a.logger.Debug().Int64("event_id", item.Event.ID).Msg("skipping event without resolvable location")
			continue
		}
		waypoints = append(waypoints, EventWaypoint(item.Event, loc.DisplayName(), coord))
	}
	return waypoints
}

// EventWaypoint builds an event stop.
func EventWaypoint(e models.Event, name string, coord geo.Coordinate) models.Waypoint {
	id := e.ID
	return models.Waypoint{
		Name:        name,
		Coordinates: coord,
		Role:        models.WaypointEvent,
		EventID:     &id,
		EventTitle:  e.Title,
		Start:       e.Start,
		End:         e.End,
	}
}

func formatDistance(meters float64) string {
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%.0f m", meters)
}

func formatDuration(seconds int) string {
	minutes := (seconds + 59) / 60
	if minutes <= 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}
