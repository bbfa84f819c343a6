// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/config"
	"github.com/tomtom215/openday/internal/logging"
	"github.com/tomtom215/openday/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestTracker(t *testing.T) (*Tracker, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 5, 9, 9, 0, 0, 0, time.UTC)}
	cfg := DefaultTrackerConfig()
	cfg.Clock = clock.Now
	tr, err := NewTracker(NewMemoryStore(), cfg, logging.NewTestLogger(io.Discard))
	require.NoError(t, err)
	return tr, clock
}

func TestTracker_RecordAndScore(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, tr.RecordView(ctx, 1))
	}
	require.NoError(t, tr.RecordScheduled(ctx, 1))

	rec, err := tr.Record(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.PopularityRecord{EventID: 1, Views: 4, Adds: 1, Score: 7, Trend: models.TrendRising}, rec)

	none, err := tr.Record(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.PopularityRecord{EventID: 2, Trend: models.TrendStable}, none)
}

func TestTracker_IsHighDemand(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for i := 0; i < 14; i++ {
		require.NoError(t, tr.RecordScheduled(ctx, 3))
	}
	high, err := tr.IsHighDemand(ctx, 3)
	require.NoError(t, err)
	assert.False(t, high, "score 70 is not above the threshold")

	require.NoError(t, tr.RecordScheduled(ctx, 3))
	high, err = tr.IsHighDemand(ctx, 3)
	require.NoError(t, err)
	assert.True(t, high)
}

func TestTracker_ScoresIncludesUnknown(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()
	require.NoError(t, tr.RecordScheduled(ctx, 5))

	scores, err := tr.Scores(ctx, []int64{5, 6})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{5: 5, 6: 0}, scores)
}

func TestTracker_MostPopular(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.RecordView(ctx, 1))
	require.NoError(t, tr.RecordScheduled(ctx, 2))
	require.NoError(t, tr.RecordView(ctx, 3))
	require.NoError(t, tr.RecordView(ctx, 3))

	top, err := tr.MostPopular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].EventID)
	assert.Equal(t, int64(3), top[1].EventID)
}

func TestTracker_Trend(t *testing.T) {
	t.Run("no activity is stable", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		assert.Equal(t, models.TrendStable, tr.Trend(9))
	})

	t.Run("burst is rising then falling", func(t *testing.T) {
		tr, clock := newTestTracker(t)
		require.NoError(t, tr.RecordView(context.Background(), 1))
		assert.Equal(t, models.TrendRising, tr.Trend(1))

		clock.Advance(30 * time.Minute)
		assert.Equal(t, models.TrendFalling, tr.Trend(1))

		clock.Advance(3 * time.Hour)
		assert.Equal(t, models.TrendStable, tr.Trend(1))
	})

	t.Run("steady activity is stable", func(t *testing.T) {
		tr, clock := newTestTracker(t)
		for i := 0; i < 12; i++ {
			if i > 0 {
				clock.Advance(10 * time.Minute)
			}
			require.NoError(t, tr.RecordView(context.Background(), 1))
		}
		clock.Advance(5 * time.Minute)
		assert.Equal(t, models.TrendStable, tr.Trend(1))
	})
}

func TestTracker_PruneIdle(t *testing.T) {
	tr, clock := newTestTracker(t)
	ctx := context.Background()
	require.NoError(t, tr.RecordView(ctx, 1))
	require.NoError(t, tr.RecordView(ctx, 2))

	assert.Equal(t, 0, tr.PruneIdle())
	assert.Equal(t, 2, tr.TrackedEvents())

	clock.Advance(20 * time.Minute)
	assert.Equal(t, 2, tr.PruneIdle(), "short windows emptied")
	assert.Equal(t, 2, tr.TrackedEvents())

	clock.Advance(3 * time.Hour)
	assert.Equal(t, 2, tr.PruneIdle(), "long windows emptied")
	assert.Equal(t, 0, tr.TrackedEvents())
}

func TestTrackerConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*TrackerConfig)
		wantError bool
	}{
		{"defaults", func(c *TrackerConfig) {}, false},
		{"threshold over 100", func(c *TrackerConfig) { c.HighDemandThreshold = 101 }, true},
		{"long not longer than short", func(c *TrackerConfig) { c.LongWindow = c.ShortWindow }, true},
		{"zero buckets", func(c *TrackerConfig) { c.WindowBuckets = 0 }, true},
		{"rising ratio 1", func(c *TrackerConfig) { c.RisingRatio = 1 }, true},
		{"falling ratio 1", func(c *TrackerConfig) { c.FallingRatio = 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTrackerConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestNewStoreFromConfig(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(io.Discard)

	t.Run("memory", func(t *testing.T) {
		s, err := NewStoreFromConfig(ctx, &config.PopularityConfig{Backend: "memory"}, logger)
		require.NoError(t, err)
		assert.Equal(t, "memory", s.Name())
	})

	t.Run("redis", func(t *testing.T) {
		_, mr := newTestRedisStore(t)
		s, err := NewStoreFromConfig(ctx, &config.PopularityConfig{
			Backend: "redis",
			Redis:   config.RedisConfig{Addr: mr.Addr()},
		}, logger)
		require.NoError(t, err)
		defer s.Close()
		_, ok := s.(*ResilientStore)
		assert.True(t, ok)
		assert.Equal(t, "redis", s.Name())
	})

	t.Run("badger", func(t *testing.T) {
		s, err := NewStoreFromConfig(ctx, &config.PopularityConfig{
			Backend: "badger",
			Badger:  config.BadgerConfig{InMemory: true},
		}, logger)
		require.NoError(t, err)
		defer s.Close()
		assert.Equal(t, "badger", s.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewStoreFromConfig(ctx, &config.PopularityConfig{Backend: "etcd"}, logger)
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}
