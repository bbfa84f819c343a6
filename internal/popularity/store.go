// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"sort"

	"github.com/tomtom215/openday/internal/models"
)

// addWeight is how many views one schedule add is worth.
const addWeight = 10

// Counts are the raw counters of one event.
type Counts struct {
	Views int64 `json:"views"`
	Adds  int64 `json:"adds"`
}

// Score returns the 0-100 popularity score.
func (c Counts) Score() int {
	return models.PopularityScore(c.Views, c.Adds)
}

// weight is the uncapped ranking value.
func (c Counts) weight() int64 {
	return c.Views + c.Adds*addWeight
}

// EventCounts pairs counters with their event.
type EventCounts struct {
	EventID int64
	Counts
}

// Store persists popularity counters. Implementations must be safe for
// concurrent use.
type Store interface {
	IncrView(ctx context.Context, eventID int64) error
	IncrAdd(ctx context.Context, eventID int64) error
	// Get returns counters for ids. Unknown events are omitted.
	Get(ctx context.Context, ids []int64) (map[int64]Counts, error)
	// Top returns up to limit events by descending weight.
	Top(ctx context.Context, limit int) ([]EventCounts, error)
	Name() string
	Close() error
}

// sortByWeight orders entries by descending weight, then ascending ID.
func sortByWeight(entries []EventCounts) {
	sort.Slice(entries, func(i, j int) bool {
		wi, wj := entries[i].weight(), entries[j].weight()
		if wi != wj {
			return wi > wj
		}
		return entries[i].EventID < entries[j].EventID
	})
}

func truncate(entries []EventCounts, limit int) []EventCounts {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
