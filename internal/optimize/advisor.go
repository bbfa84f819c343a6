// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package optimize

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/schedule"
)

// Advisor analyzes schedules. It holds no mutable state.
type Advisor struct {
	cfg    *Config
	logger zerolog.Logger
}

// NewAdvisor creates an Advisor. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAdvisor(cfg *Config, logger zerolog.Logger) (*Advisor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid optimize config: %w", err)
	}
	return &Advisor{
		cfg:    cfg,
		logger: logger.With().Str("component", "optimize").Logger(),
	}, nil
}

// Analyze scores snapshot and proposes improvements. locations and
// programNames label the diversity report and may be nil.
func (a *Advisor) Analyze(snapshot models.ScheduleSnapshot, locations models.LocationLookup, programNames map[int64]string) models.ScheduleOptimizationResult {
	result := models.ScheduleOptimizationResult{
		Conflicts:   []models.ScheduleConflict{},
		Gaps:        []models.ScheduleGap{},
		Diversity:   diversity(snapshot, locations, programNames),
		Suggestions: []models.OptimizationSuggestion{},
	}
	if snapshot.IsEmpty() {
		return result
	}

	result.Conflicts = findConflicts(snapshot)
	result.Gaps = a.findGaps(snapshot)
	result.Suggestions = a.suggest(snapshot, result.Conflicts, result.Gaps)
	result.Score = a.score(snapshot.Len(), result.Diversity.DistinctCategories, len(result.Conflicts), len(result.Gaps))

	a.logger.Debug().
		Int("events", snapshot.Len()).
		Int("conflicts", len(result.Conflicts)).
		Int("gaps", len(result.Gaps)).
		Int("score", result.Score).
		Msg("Schedule analyzed")

	return result
}

// findConflicts compares every pair of timed items in chronological order.
func findConflicts(snapshot models.ScheduleSnapshot) []models.ScheduleConflict {
	timed := snapshot.Timed()
	conflicts := []models.ScheduleConflict{}
	for i := 0; i < len(timed); i++ {
		for j := i + 1; j < len(timed); j++ {
			a, b := timed[i].Event, timed[j].Event
			if m := schedule.EventOverlap(a, b); m > 0 {
				conflicts = append(conflicts, models.ScheduleConflict{
					EventA:         a.ID,
					EventB:         b.ID,
					TitleA:         a.Title,
					TitleB:         b.Title,
					OverlapMinutes: m,
				})
			}
		}
	}
	return conflicts
}

// findGaps walks the timed items keeping the latest end seen so far, so an
// event nested inside a longer one does not produce a phantom gap.
func (a *Advisor) findGaps(snapshot models.ScheduleSnapshot) []models.ScheduleGap {
	timed := snapshot.Timed()
	gaps := []models.ScheduleGap{}
	if len(timed) < 2 {
		return gaps
	}

	latest := timed[0].Event
	for _, item := range timed[1:] {
		next := item.Event
		if sameDay(*latest.End, *next.Start) {
			minutes := int(next.Start.Sub(*latest.End).Minutes())
			if minutes >= a.cfg.MinGapMinutes && minutes <= a.cfg.MaxGapMinutes {
				gaps = append(gaps, models.ScheduleGap{
					AfterEventID:  latest.ID,
					BeforeEventID: next.ID,
					Start:         *latest.End,
					End:           *next.Start,
					Minutes:       minutes,
				})
			}
		}
		if next.End.After(*latest.End) {
			latest = next
		}
	}
	return gaps
}

func (a *Advisor) suggest(snapshot models.ScheduleSnapshot, conflicts []models.ScheduleConflict, gaps []models.ScheduleGap) []models.OptimizationSuggestion {
	out := []models.OptimizationSuggestion{}

	for _, c := range conflicts {
		out = append(out, models.OptimizationSuggestion{
			Type:        models.SuggestResolveConflict,
			Title:       "Resolve time conflict",
			Description: fmt.Sprintf("%q and %q overlap by %d minutes", c.TitleA, c.TitleB, c.OverlapMinutes),
			Benefit:     a.cfg.ConflictBenefit,
			EventIDs:    []int64{c.EventA, c.EventB},
			Actions: []models.SuggestionAction{
				{Kind: "remove_event", EventID: c.EventA, Label: fmt.Sprintf("Remove %q", c.TitleA)},
				{Kind: "remove_event", EventID: c.EventB, Label: fmt.Sprintf("Remove %q", c.TitleB)},
			},
		})
	}

	for i := range gaps {
		g := gaps[i]
		if g.Minutes < a.cfg.FillGapMinMinutes {
			continue
		}
		out = append(out, models.OptimizationSuggestion{
			Type:        models.SuggestFillGap,
			Title:       "Use your free time",
			Description: fmt.Sprintf("You have %d free minutes from %s to %s", g.Minutes, g.Start.Format("15:04"), g.End.Format("15:04")),
			Benefit:     a.cfg.GapBenefit,
			EventIDs:    []int64{g.AfterEventID, g.BeforeEventID},
			Gap:         &g,
			Actions: []models.SuggestionAction{
				{Kind: "find_event", Label: "Find an event for this slot"},
			},
		})
	}

	if c, n := dominantCategory(snapshot); n >= a.cfg.DiversityThreshold {
		out = append(out, models.OptimizationSuggestion{
			Type:        models.SuggestAddDiversity,
			Title:       "Try something different",
			Description: fmt.Sprintf("%d of your events are %s", n, c.Label()),
			Benefit:     a.cfg.DiversityBenefit,
			Category:    c,
			Actions: []models.SuggestionAction{
				{Kind: "find_event", Label: "Browse other event types"},
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Benefit > out[j].Benefit
	})
	return out
}

func (a *Advisor) score(events, categories, conflicts, gaps int) int {
	if events == 0 {
		return 0
	}
	c := a.cfg
	s := c.BaseScore
	s -= c.ConflictPenalty * conflicts
	s += minInt(c.CategoryBonus*categories, c.CategoryBonusCap)
	s += minInt(c.EventBonus*events, c.EventBonusCap)
	s -= minInt(c.GapPenalty*gaps, c.GapPenaltyCap)
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func diversity(snapshot models.ScheduleSnapshot, locations models.LocationLookup, programNames map[int64]string) models.DiversityReport {
	report := models.DiversityReport{
		ByEventType:    map[string]int{},
		ByStudyProgram: map[string]int{},
		ByLocation:     map[string]int{},
	}
	for _, e := range snapshot.Events() {
		report.ByEventType[e.Category.Label()]++

		seen := make(map[int64]bool, len(e.StudyProgramIDs))
		for _, pid := range e.StudyProgramIDs {
			if seen[pid] {
				continue
			}
			seen[pid] = true
			report.ByStudyProgram[programLabel(pid, programNames)]++
		}

		if e.LocationID != nil && locations != nil {
			if loc, ok := locations.Location(*e.LocationID); ok {
				report.ByLocation[loc.DisplayName()]++
			}
		}
	}
	report.DistinctCategories = len(report.ByEventType)
	return report
}

func programLabel(id int64, names map[int64]string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Program %d", id)
}

// dominantCategory returns the most frequent category, preferring the
// earlier one in Categories order on ties.
func dominantCategory(snapshot models.ScheduleSnapshot) (models.Category, int) {
	var best models.Category
	bestN := 0
	for _, c := range models.Categories() {
		if n := snapshot.CategoryCount(c); n > bestN {
			best, bestN = c, n
		}
	}
	return best, bestN
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
