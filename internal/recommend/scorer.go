// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"fmt"

	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/schedule"
)

// Scorer computes a single EventRecommendation. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	cfg  *Config
	calc *geo.Calculator
}

// NewScorer creates a Scorer. cfg must already be validated.
func NewScorer(cfg *Config, calc *geo.Calculator) *Scorer {
	if calc == nil {
		calc = geo.NewCalculator(geo.DefaultCalculatorConfig())
	}
	return &Scorer{cfg: cfg, calc: calc}
}

// Score scores event against the visitor context.
func (s *Scorer) Score(event models.Event, rctx Context) models.EventRecommendation {
	w := s.cfg.Weights
	rec := models.EventRecommendation{Event: event}
	score := 0

	if pts, matched := s.programPoints(event, rctx.StudyProgramIDs); pts > 0 {
		score += pts
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonStudyProgram,
			Message: fmt.Sprintf("Matches %d of your study programs", matched),
			Weight:  ratio(pts, w.ProgramMatchCap),
		})
	}

	if containsCategory(rctx.PreferredCategories, event.Category) && w.CategoryMatch > 0 {
		score += w.CategoryMatch
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonEventType,
			Message: fmt.Sprintf("You prefer %s", event.Category.Label()),
			Weight:  1,
		})
	}

	if fitsAnySlot(event, rctx.OpenSlots) && w.TimeFit > 0 {
		score += w.TimeFit
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonTimeFit,
			Message: "Fits one of your free time slots",
			Weight:  1,
		})
	}

	rec.ConflictsWith = schedule.Conflicts(event, rctx.Schedule.Events())
	rec.HasConflict = len(rec.ConflictsWith) > 0
	if !rec.HasConflict && w.NoConflict > 0 {
		score += w.NoConflict
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonNoConflict,
			Message: "No conflict with your schedule",
			Weight:  1,
		})
	}

	if pop, ok := rctx.Popularity[event.ID]; ok && pop > s.cfg.HighDemandThreshold {
		rec.HighDemand = true
		if w.HighDemand > 0 {
			score += w.HighDemand
			rec.Reasons = append(rec.Reasons, models.RecommendationReason{
				Type:    models.ReasonPopularity,
				Message: "Popular with other visitors",
				Weight:  float64(pop) / 100,
			})
		}
	}

	if !rctx.Schedule.HasCategory(event.Category) && w.Diversity > 0 {
		score += w.Diversity
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonDiversity,
			Message: fmt.Sprintf("Adds %s to your day", event.Category.Label()),
			Weight:  1,
		})
	}

	if travel, fits, ok := s.travelFit(event, rctx); ok {
		rec.TravelSeconds = &travel
		if fits && w.TravelFit > 0 {
			score += w.TravelFit
			rec.Reasons = append(rec.Reasons, models.RecommendationReason{
				Type:    models.ReasonLocation,
				Message: fmt.Sprintf("About %d min walk from your previous event", (travel+59)/60),
				Weight:  1 - ratio(travel, s.maxTravel(rctx)+1),
			})
		}
	}

	if containsID(rctx.ViewedEventIDs, event.ID) {
		score -= w.ViewedPenalty
	}

	if len(rec.Reasons) == 0 {
		rec.Reasons = append(rec.Reasons, models.RecommendationReason{
			Type:    models.ReasonGeneral,
			Message: "Part of the open day programme",
			Weight:  0,
		})
	}

	rec.Score = clampScore(score)
	return rec
}

func (s *Scorer) programPoints(event models.Event, wanted []int64) (points, matched int) {
	for _, id := range wanted {
		if event.HasProgram(id) {
			matched++
		}
	}
	points = matched * s.cfg.Weights.ProgramMatch
	if points > s.cfg.Weights.ProgramMatchCap {
		points = s.cfg.Weights.ProgramMatchCap
	}
	return points, matched
}

// travelFit estimates the walk from the chronologically nearest scheduled
// event that ends at or before the candidate starts. ok is false when no
// such event exists or either building cannot be resolved.
func (s *Scorer) travelFit(event models.Event, rctx Context) (seconds int, fits, ok bool) {
	window, timed := event.Window()
	if !timed || rctx.Locations == nil {
		return 0, false, false
	}
	_, to, resolved := models.ResolveCoordinate(rctx.Locations, event)
	if !resolved {
		return 0, false, false
	}

	var prev *models.Event
	for _, item := range rctx.Schedule.Timed() {
		e := item.Event
		if e.ID == event.ID || e.End.After(window.Start) {
			continue
		}
		if prev == nil || e.End.After(*prev.End) {
			candidate := e
			prev = &candidate
		}
	}
	if prev == nil {
		return 0, false, false
	}
	_, from, resolved := models.ResolveCoordinate(rctx.Locations, *prev)
	if !resolved {
		return 0, false, false
	}

	_, seconds = s.calc.TravelTime(from, to, rctx.Profile)
	gap := int(window.Start.Sub(*prev.End).Seconds())
	fits = seconds <= s.maxTravel(rctx) && seconds <= gap
	return seconds, fits, true
}

func (s *Scorer) maxTravel(rctx Context) int {
	if rctx.MaxTravelSeconds > 0 {
		return rctx.MaxTravelSeconds
	}
	return s.cfg.DefaultMaxTravelSeconds
}

func fitsAnySlot(event models.Event, slots []models.TimeWindow) bool {
	for _, slot := range slots {
		if schedule.FitsWindow(event, slot) {
			return true
		}
	}
	return false
}

func containsCategory(list []models.Category, c models.Category) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

func containsID(list []int64, id int64) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	r := float64(part) / float64(whole)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
