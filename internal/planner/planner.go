// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package planner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/catalog"
	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/ics"
	"github.com/tomtom215/openday/internal/metrics"
	"github.com/tomtom215/openday/internal/models"
	"github.com/tomtom215/openday/internal/optimize"
	"github.com/tomtom215/openday/internal/popularity"
	"github.com/tomtom215/openday/internal/recommend"
	"github.com/tomtom215/openday/internal/route"
	"github.com/tomtom215/openday/internal/schedule"
)

// Visitor is the per-request visitor state sent by clients.
type Visitor struct {
	ScheduleIDs         []int64             `json:"schedule_ids"`
	StudyProgramIDs     []int64             `json:"study_program_ids"`
	PreferredCategories []models.Category   `json:"preferred_categories"`
	ViewedEventIDs      []int64             `json:"viewed_event_ids"`
	OpenSlots           []models.TimeWindow `json:"open_slots"`
	MaxTravelSeconds    int                 `json:"max_travel_seconds"`
	Profile             geo.SpeedProfile    `json:"profile"`
}

// PopularEvent is a popularity record with its event title.
type PopularEvent struct {
	models.PopularityRecord
	Title string `json:"title"`
}

// Planner ties the catalogue to the planning engines. It holds no
// per-visitor state and is safe for concurrent use.
type Planner struct {
	catalog   *catalog.Catalog
	calc      *geo.Calculator
	engine    *recommend.Engine
	assembler *route.Assembler
	advisor   *optimize.Advisor
	tracker   *popularity.Tracker
	exporter  *ics.Exporter
	logger    zerolog.Logger
}

// New builds a Planner over cat. A nil tracker uses an in-memory store
// with default settings.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, tracker *popularity.Tracker, opts Options, logger zerolog.Logger) (*Planner, error) {
	if cat == nil {
		return nil, fmt.Errorf("planner requires a catalog")
	}

	if tracker == nil {
		t, err := popularity.NewTracker(popularity.NewMemoryStore(), popularity.DefaultTrackerConfig(), logger)
		if err != nil {
			return nil, fmt.Errorf("create popularity tracker: %w", err)
		}
		tracker = t
	}

	calc := geo.NewCalculator(opts.Calculator)

	engine, err := recommend.NewEngine(opts.Recommend, calc, tracker, logger)
	if err != nil {
		return nil, err
	}
	assembler, err := route.NewAssembler(opts.Route, calc, logger)
	if err != nil {
		return nil, err
	}
	advisor, err := optimize.NewAdvisor(opts.Optimize, logger)
	if err != nil {
		return nil, err
	}

	p := &Planner{
		catalog:   cat,
		calc:      calc,
		engine:    engine,
		assembler: assembler,
		advisor:   advisor,
		tracker:   tracker,
		exporter:  ics.NewExporter(opts.CalendarName),
		logger:    logger.With().Str("component", "planner").Logger(),
	}

	p.logger.Info().
		Int("events", len(cat.Events())).
		Int("locations", len(cat.Locations())).
		Str("popularity_backend", tracker.Backend()).
		Str("calculator", calc.String()).
		Msg("Planner ready")

	return p, nil
}

// Catalog returns the underlying catalogue.
func (p *Planner) Catalog() *catalog.Catalog {
	return p.catalog
}

// Tracker returns the popularity tracker.
func (p *Planner) Tracker() *popularity.Tracker {
	return p.tracker
}

// Calculator returns the shared distance calculator.
func (p *Planner) Calculator() *geo.Calculator {
	return p.calc
}

// Schedule resolves ids into a snapshot in the given order. Unknown IDs are
// skipped.
func (p *Planner) Schedule(ids []int64) models.ScheduleSnapshot {
	found, missing := p.catalog.EventsByIDs(ids)
	if len(missing) > 0 {
		p.logger.Debug().Interface("missing", missing).Msg("Skipping unknown schedule IDs")
	}
	return models.SnapshotFromEvents(found)
}

func (p *Planner) recommendContext(v Visitor) recommend.Context {
	return recommend.Context{
		Schedule:            p.Schedule(v.ScheduleIDs),
		StudyProgramIDs:     v.StudyProgramIDs,
		PreferredCategories: v.PreferredCategories,
		ViewedEventIDs:      v.ViewedEventIDs,
		OpenSlots:           v.OpenSlots,
		MaxTravelSeconds:    v.MaxTravelSeconds,
		Profile:             v.Profile,
		Locations:           p.catalog,
		ProgramNames:        p.catalog.ProgramNames(),
	}
}

// Score scores a single catalogue event for the visitor.
func (p *Planner) Score(ctx context.Context, eventID int64, v Visitor) (models.EventRecommendation, error) {
	event, ok := p.catalog.Event(eventID)
	if !ok {
		return models.EventRecommendation{}, fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}
	return p.engine.Score(ctx, event, p.recommendContext(v)), nil
}

// Recommend ranks candidateIDs for the visitor. An empty candidate list
// considers the whole catalogue. Candidates are taken in catalogue order so
// equal scores rank the same way regardless of request order.
func (p *Planner) Recommend(ctx context.Context, candidateIDs []int64, v Visitor, filters recommend.Filters) (recommend.Result, error) {
	candidates := p.catalog.Events()
	if len(candidateIDs) > 0 {
		candidates = p.catalog.EventsInCatalogOrder(candidateIDs)
	}
	return p.engine.Recommend(ctx, candidates, p.recommendContext(v), filters)
}

// BatchAdd adds candidateIDs to the schedule formed by existingIDs.
func (p *Planner) BatchAdd(candidateIDs, existingIDs []int64, skipConflicts bool) models.BatchResult {
	result := schedule.BatchAdd(candidateIDs, p.catalog, p.Schedule(existingIDs), skipConflicts)
	metrics.RecordBatch(result.AddedCount, result.SkippedCount, result.ConflictingCount)

	p.logger.Debug().
		Int("candidates", len(candidateIDs)).
		Int("added", result.AddedCount).
		Int("skipped", result.SkippedCount).
		Int("conflicting", result.ConflictingCount).
		Bool("skip_conflicts", skipConflicts).
		Msg("Batch add evaluated")

	return result
}

// AnalyzeSchedule reports conflicts, gaps, diversity and suggestions.
func (p *Planner) AnalyzeSchedule(ids []int64) models.ScheduleOptimizationResult {
	result := p.advisor.Analyze(p.Schedule(ids), p.catalog, p.catalog.ProgramNames())
	metrics.RecordScheduleAnalysis(result.Score, len(result.Conflicts))
	return result
}

// BuildRoute connects waypoints in order.
func (p *Planner) BuildRoute(waypoints []models.Waypoint, profile geo.SpeedProfile) models.Route {
	r := p.assembler.BuildRoute(waypoints, profile)
	p.recordRoute(r)
	return r
}

// RouteForSchedule builds a route through the visitor's timed events. start
// may be nil.
func (p *Planner) RouteForSchedule(ids []int64, start *models.Waypoint, opts route.TravelOptions) models.Route {
	waypoints := p.assembler.WaypointsForSchedule(p.Schedule(ids), p.catalog, start)
	r := p.assembler.BuildRouteWithSettings(waypoints, opts)
	p.recordRoute(r)
	return r
}

func (p *Planner) recordRoute(r models.Route) {
	metrics.RecordRoute(len(r.Legs), route.WarningsBySeverity(r.Warnings))
}

// AnalyzeTravel checks every consecutive pair of timed events.
func (p *Planner) AnalyzeTravel(ids []int64, opts route.TravelOptions) []models.TravelTimeAnalysis {
	analyses := p.assembler.AnalyzeTravelTimes(p.Schedule(ids), p.catalog, opts)
	for _, a := range analyses {
		metrics.RecordTravelStatus(string(a.Status))
	}
	return analyses
}

// ExportCalendar renders the schedule as iCalendar text.
func (p *Planner) ExportCalendar(ids []int64) (string, error) {
	return p.exporter.Export(p.Schedule(ids), p.catalog)
}

// RecordView counts a detail view of a catalogue event.
func (p *Planner) RecordView(ctx context.Context, eventID int64) error {
	if _, ok := p.catalog.Event(eventID); !ok {
		return fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}
	return p.tracker.RecordView(ctx, eventID)
}

// RecordScheduled counts an add of a catalogue event to a schedule.
func (p *Planner) RecordScheduled(ctx context.Context, eventID int64) error {
	if _, ok := p.catalog.Event(eventID); !ok {
		return fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}
	return p.tracker.RecordScheduled(ctx, eventID)
}

// Popularity returns the counters and trend for one event.
func (p *Planner) Popularity(ctx context.Context, eventID int64) (models.PopularityRecord, error) {
	if _, ok := p.catalog.Event(eventID); !ok {
		return models.PopularityRecord{}, fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}
	return p.tracker.Record(ctx, eventID)
}

// MostPopular returns up to limit catalogue events by popularity. Counters
// for events no longer in the catalogue are dropped.
func (p *Planner) MostPopular(ctx context.Context, limit int) ([]PopularEvent, error) {
	records, err := p.tracker.MostPopular(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]PopularEvent, 0, len(records))
	for _, rec := range records {
		event, ok := p.catalog.Event(rec.EventID)
		if !ok {
			continue
		}
		out = append(out, PopularEvent{PopularityRecord: rec, Title: event.Title})
	}
	return out, nil
}

// PruneIdle drops trend windows with no recent activity.
func (p *Planner) PruneIdle() int {
	return p.tracker.PruneIdle()
}

// Nearby returns buildings within radiusMeters of coord, nearest first.
func (p *Planner) Nearby(coord geo.Coordinate, radiusMeters float64) []catalog.NearbyLocation {
	return p.catalog.Nearby(coord, radiusMeters)
}

// Close releases the popularity store.
func (p *Planner) Close() error {
	return p.tracker.Close()
}
