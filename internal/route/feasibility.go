// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package route

import (
	"fmt"
	"time"

	"github.com/tomtom215/openday/internal/models"
)

// checkLeg applies the timing and distance rules to one leg. The two rule
// families are additive.
func (a *Assembler) checkLeg(i int, from, to models.Waypoint, leg models.RouteLeg, bufferSeconds int) []models.RouteWarning {
	var warnings []models.RouteWarning

	coordsKnown := from.Coordinates.Valid() && to.Coordinates.Valid()
	if coordsKnown && from.IsTimedEvent() && to.IsTimedEvent() {
		available := secondsBetween(*from.End, *to.Start)
		required := leg.DurationSeconds + bufferSeconds

		switch {
		case available < leg.DurationSeconds:
			warnings = append(warnings, models.RouteWarning{
				Type:     models.WarningInsufficientTime,
				Severity: models.SeverityError,
				LegIndex: i,
				Message: fmt.Sprintf("Not enough time to walk from %s to %s: %s needed, %s available",
					from.Name, to.Name, formatDuration(leg.DurationSeconds), formatAvailable(available)),
			})
		case available < required:
			warnings = append(warnings, models.RouteWarning{
				Type:     models.WarningNoBuffer,
				Severity: models.SeverityWarning,
				LegIndex: i,
				Message: fmt.Sprintf("Tight transfer from %s to %s: no time to spare for delays",
					from.Name, to.Name),
			})
		}
	}

	if leg.DistanceMeters > a.cfg.LongDistanceMeters {
		warnings = append(warnings, models.RouteWarning{
			Type:     models.WarningLongDistance,
			Severity: models.SeverityInfo,
			LegIndex: i,
			Message: fmt.Sprintf("Long walk of %s from %s to %s",
				formatDistance(leg.DistanceMeters), from.Name, to.Name),
		})
	}

	return warnings
}

// AnalyzeTravelTimes evaluates every pair of chronologically adjacent timed
// events. Pairs where either building cannot be resolved are skipped.
func (a *Assembler) AnalyzeTravelTimes(snapshot models.ScheduleSnapshot, locations models.LocationLookup, opts TravelOptions) []models.TravelTimeAnalysis {
	settings := a.cfg.withDefaults(opts)
	timed := snapshot.Timed()
	results := make([]models.TravelTimeAnalysis, 0, len(timed))

	for i := 0; i+1 < len(timed); i++ {
		prev, next := timed[i].Event, timed[i+1].Event

		_, fromCoord, ok := models.ResolveCoordinate(locations, prev)
		if !ok {
			continue
		}
		_, toCoord, ok := models.ResolveCoordinate(locations, next)
		if !ok {
			continue
		}

		distance, walking := a.calc.TravelTime(fromCoord, toCoord, settings.Profile)
		available := secondsBetween(*prev.End, *next.Start)
		margin := available - walking - settings.BufferSeconds

		results = append(results, models.TravelTimeAnalysis{
			FromEventID:      prev.ID,
			ToEventID:        next.ID,
			FromTitle:        prev.Title,
			ToTitle:          next.Title,
			DistanceMeters:   distance,
			WalkingSeconds:   walking,
			AvailableSeconds: available,
			MarginSeconds:    margin,
			Status:           ClassifyMargin(margin, settings.MinWarningSeconds),
		})
	}

	return results
}

// ClassifyMargin maps a signed margin to a travel status.
func ClassifyMargin(marginSeconds, minWarningSeconds int) models.TravelStatus {
	switch {
	case marginSeconds < 0:
		return models.TravelInsufficient
	case marginSeconds < minWarningSeconds:
		return models.TravelTight
	default:
		return models.TravelOK
	}
}

// WarningsBySeverity tallies route warnings by severity.
func WarningsBySeverity(warnings []models.RouteWarning) map[string]int {
	out := make(map[string]int, 3)
	for _, w := range warnings {
		out[string(w.Severity)]++
	}
	return out
}

func secondsBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Second)
}

func formatAvailable(seconds int) string {
	if seconds <= 0 {
		return "none"
	}
	return formatDuration(seconds)
}
