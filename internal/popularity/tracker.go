// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/openday/internal/cache"
	"github.com/tomtom215/openday/internal/metrics"
	"github.com/tomtom215/openday/internal/models"
)

// TrackerConfig tunes scoring thresholds and trend windows.
type TrackerConfig struct {
	// HighDemandThreshold is the score an event must exceed.
	// Default: 70.
	HighDemandThreshold int
	// Default: 15m.
	ShortWindow time.Duration
	// Default: 2h.
	LongWindow time.Duration
	// WindowBuckets is the resolution of each window.
	// Default: 12.
	WindowBuckets int
	// Default: 1.5.
	RisingRatio float64
	// Default: 0.5.
	FallingRatio float64
	// MaxTrackedEvents bounds trend state.
	// Default: 10000.
	MaxTrackedEvents int
	// Clock drives the trend windows; nil uses time.Now.
	Clock cache.Clock
}

// DefaultTrackerConfig returns the standard configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		HighDemandThreshold: 70,
		ShortWindow:         15 * time.Minute,
		LongWindow:          2 * time.Hour,
		WindowBuckets:       12,
		RisingRatio:         1.5,
		FallingRatio:        0.5,
		MaxTrackedEvents:    10000,
	}
}

// Validate checks the configuration.
func (c *TrackerConfig) Validate() error {
	if c.HighDemandThreshold < 0 || c.HighDemandThreshold > 100 {
		return fmt.Errorf("high_demand_threshold must be in [0, 100], got %d", c.HighDemandThreshold)
	}
	if c.ShortWindow <= 0 || c.LongWindow <= c.ShortWindow {
		return fmt.Errorf("long_window (%s) must exceed short_window (%s)", c.LongWindow, c.ShortWindow)
	}
	if c.WindowBuckets < 1 {
		return fmt.Errorf("window_buckets must be positive, got %d", c.WindowBuckets)
	}
	if c.RisingRatio <= 1 {
		return fmt.Errorf("rising_ratio must be > 1, got %f", c.RisingRatio)
	}
	if c.FallingRatio <= 0 || c.FallingRatio >= 1 {
		return fmt.Errorf("falling_ratio must be in (0, 1), got %f", c.FallingRatio)
	}
	return nil
}

// Tracker records visitor activity and answers popularity queries. It is
// safe for concurrent use.
type Tracker struct {
	cfg    TrackerConfig
	store  Store
	short  *cache.SlidingWindowStore
	long   *cache.SlidingWindowStore
	logger zerolog.Logger
}

// NewTracker creates a Tracker over store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewTracker(store Store, cfg TrackerConfig, logger zerolog.Logger) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid popularity config: %w", err)
	}
	return &Tracker{
		cfg:    cfg,
		store:  store,
		short:  cache.NewSlidingWindowStore(cfg.ShortWindow, cfg.WindowBuckets, cfg.MaxTrackedEvents, cfg.Clock),
		long:   cache.NewSlidingWindowStore(cfg.LongWindow, cfg.WindowBuckets, cfg.MaxTrackedEvents, cfg.Clock),
		logger: logger.With().Str("component", "popularity").Logger(),
	}, nil
}

func trendKey(eventID int64) string {
	return strconv.FormatInt(eventID, 10)
}

func (t *Tracker) bumpTrend(eventID int64, weight int64) {
	key := trendKey(eventID)
	t.short.IncrementBy(key, weight)
	t.long.IncrementBy(key, weight)
}

// RecordView counts a detail view.
func (t *Tracker) RecordView(ctx context.Context, eventID int64) error {
	if err := t.store.IncrView(ctx, eventID); err != nil {
		return fmt.Errorf("record view for event %d: %w", eventID, err)
	}
	t.bumpTrend(eventID, 1)
	metrics.RecordPopularityEvent("view")
	return nil
}

// RecordScheduled counts an add to a schedule.
func (t *Tracker) RecordScheduled(ctx context.Context, eventID int64) error {
	if err := t.store.IncrAdd(ctx, eventID); err != nil {
		return fmt.Errorf("record add for event %d: %w", eventID, err)
	}
	t.bumpTrend(eventID, addWeight)
	metrics.RecordPopularityEvent("add")
	return nil
}

// Record returns the popularity record for one event. Events without
// activity have zero counters and a stable trend.
func (t *Tracker) Record(ctx context.Context, eventID int64) (models.PopularityRecord, error) {
	counts, err := t.store.Get(ctx, []int64{eventID})
	if err != nil {
		return models.PopularityRecord{}, fmt.Errorf("read popularity for event %d: %w", eventID, err)
	}
	return t.record(eventID, counts[eventID]), nil
}

func (t *Tracker) record(eventID int64, c Counts) models.PopularityRecord {
	return models.PopularityRecord{
		EventID: eventID,
		Views:   c.Views,
		Adds:    c.Adds,
		Score:   c.Score(),
		Trend:   t.Trend(eventID),
	}
}

// IsHighDemand reports whether the event's score exceeds the threshold.
func (t *Tracker) IsHighDemand(ctx context.Context, eventID int64) (bool, error) {
	rec, err := t.Record(ctx, eventID)
	if err != nil {
		return false, err
	}
	return rec.Score > t.cfg.HighDemandThreshold, nil
}

// HighDemandThreshold returns the configured threshold.
func (t *Tracker) HighDemandThreshold() int {
	return t.cfg.HighDemandThreshold
}

// MostPopular returns up to limit records ordered by popularity.
func (t *Tracker) MostPopular(ctx context.Context, limit int) ([]models.PopularityRecord, error) {
	top, err := t.store.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read popularity ranking: %w", err)
	}
	out := make([]models.PopularityRecord, len(top))
	for i, e := range top {
		out[i] = t.record(e.EventID, e.Counts)
	}
	return out, nil
}

// Scores returns popularity scores for ids. Events without activity score 0
// and are included.
func (t *Tracker) Scores(ctx context.Context, ids []int64) (map[int64]int, error) {
	counts, err := t.store.Get(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read popularity scores: %w", err)
	}
	out := make(map[int64]int, len(ids))
	for _, id := range ids {
		out[id] = counts[id].Score()
	}
	return out, nil
}

// Trend compares the short- and long-window activity rates.
func (t *Tracker) Trend(eventID int64) models.Trend {
	key := trendKey(eventID)
	long := t.long.Count(key)
	if long <= 0 {
		return models.TrendStable
	}
	short := t.short.Count(key)

	shortRate := float64(short) / t.cfg.ShortWindow.Seconds()
	longRate := float64(long) / t.cfg.LongWindow.Seconds()

	switch {
	case shortRate > longRate*t.cfg.RisingRatio:
		return models.TrendRising
	case shortRate < longRate*t.cfg.FallingRatio:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

// PruneIdle drops trend state for events with no activity in either window
// and returns how many entries were removed.
func (t *Tracker) PruneIdle() int {
	removed := t.short.CleanupInactive() + t.long.CleanupInactive()
	if removed > 0 {
		t.logger.Debug().Int("removed", removed).Msg("Pruned idle trend windows")
	}
	return removed
}

// TrackedEvents returns how many events hold trend state.
func (t *Tracker) TrackedEvents() int {
	return t.long.Len()
}

// Backend returns the store name.
func (t *Tracker) Backend() string {
	return t.store.Name()
}

// Close closes the underlying store.
func (t *Tracker) Close() error {
	return t.store.Close()
}
