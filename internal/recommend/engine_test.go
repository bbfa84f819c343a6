// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/openday/internal/logging"
	"github.com/tomtom215/openday/internal/models"
)

type stubPopularity struct {
	scores map[int64]int
	err    error
	calls  int
	asked  []int64
}

func (s *stubPopularity) Scores(_ context.Context, ids []int64) (map[int64]int, error) {
	s.calls++
	s.asked = append(s.asked, ids...)
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[int64]int, len(ids))
	for _, id := range ids {
		if v, ok := s.scores[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func newTestEngine(t *testing.T, pop PopularitySource) *Engine {
	t.Helper()
	e, err := NewEngine(nil, nil, pop, logging.NewTestLogger(io.Discard))
	require.NoError(t, err)
	return e
}

func catalogue() []models.Event {
	return []models.Event{
		timedEvent(1, models.CategoryLecture, at(9, 0), at(10, 0), 10),
		timedEvent(2, models.CategoryLecture, at(10, 30), at(11, 30), 10),
		timedEvent(3, models.CategoryWorkshop, at(11, 0), at(12, 0), 20),
		timedEvent(4, models.CategoryLabTour, at(13, 0), at(14, 0)),
		timedEvent(5, models.CategoryLecture, at(14, 0), at(15, 0), 10),
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.DefaultLimit = 0
	_, err := NewEngine(cfg, nil, nil, logging.NewTestLogger(io.Discard))
	assert.Error(t, err)
}

func TestRecommend_SkipsScheduled(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, nil)
	events := catalogue()

	res, err := e.Recommend(context.Background(), events, Context{
		Schedule: models.SnapshotFromEvents(events[:1]),
	}, Filters{})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Considered)
	for _, r := range res.Recommendations {
		assert.NotEqual(t, int64(1), r.Event.ID)
	}
}

func TestRecommend_OrderingAndGroups(t *testing.T) {
	t.Parallel()
	pop := &stubPopularity{scores: map[int64]int{4: 95}}
	e := newTestEngine(t, pop)

	res, err := e.Recommend(context.Background(), catalogue(), Context{
		StudyProgramIDs: []int64{10},
		ProgramNames:    map[int64]string{10: "Physics", 20: "History"},
	}, Filters{})
	require.NoError(t, err)

	require.Len(t, res.Recommendations, 5)
	// Program events 1, 2, 5 score 35; the popular lab tour 25; workshop 15.
	assert.Equal(t, []int64{1, 2, 5, 4, 3}, ids(res.Recommendations))
	assert.True(t, res.Recommendations[3].HighDemand)
	assert.Equal(t, 1, pop.calls)

	labels := make([]string, len(res.Groups))
	for i, g := range res.Groups {
		labels[i] = g.Label
	}
	assert.Equal(t, []string{"Lectures", "Physics"}, labels)
}

func TestRecommend_DuplicateCandidates(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, nil)
	lab := catalogue()[3]
	other := lab
	other.Title = "Repeated"

	res, err := e.Recommend(context.Background(), []models.Event{lab, other}, Context{}, Filters{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Considered)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "Event", res.Recommendations[0].Event.Title)
	assert.Empty(t, res.Groups)
}

func TestRecommend_Filters(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, nil)
	events := catalogue()

	res, err := e.Recommend(context.Background(), events[1:], Context{
		Schedule: models.SnapshotFromEvents(events[:1]).With(timedEvent(9, models.CategoryOther, at(11, 0), at(11, 45))),
	}, Filters{ExcludeConflicts: true, Limit: 2})
	require.NoError(t, err)

	require.Len(t, res.Recommendations, 2)
	for _, r := range res.Recommendations {
		assert.False(t, r.HasConflict)
	}
}

func TestRecommend_PopularityErrorDegrades(t *testing.T) {
	t.Parallel()
	pop := &stubPopularity{err: errors.New("redis down")}
	e := newTestEngine(t, pop)

	res, err := e.Recommend(context.Background(), catalogue(), Context{}, Filters{})
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 5)
	for _, r := range res.Recommendations {
		assert.False(t, r.HighDemand)
	}
}

func TestRecommend_PrefetchedPopularitySkipsSource(t *testing.T) {
	t.Parallel()
	pop := &stubPopularity{}
	e := newTestEngine(t, pop)

	_, err := e.Recommend(context.Background(), catalogue(), Context{Popularity: map[int64]int{}}, Filters{})
	require.NoError(t, err)
	assert.Zero(t, pop.calls)
}

func TestRecommend_Canceled(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, catalogue(), Context{}, Filters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommend_EmptyCandidates(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t, nil)

	res, err := e.Recommend(context.Background(), nil, Context{}, Filters{})
	require.NoError(t, err)
	assert.Empty(t, res.Recommendations)
	assert.Empty(t, res.Groups)
}

func TestEngineScore(t *testing.T) {
	t.Parallel()
	pop := &stubPopularity{scores: map[int64]int{7: 80}}
	e := newTestEngine(t, pop)

	r := e.Score(context.Background(), models.Event{ID: 7, Category: models.CategoryLecture}, Context{})
	assert.True(t, r.HighDemand)
	assert.Equal(t, []int64{7}, pop.asked)
}
