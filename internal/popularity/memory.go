// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"sync"
	"sync/atomic"
)

const shardCount = 32

type counter struct {
	views atomic.Int64
	adds  atomic.Int64
}

type shard struct {
	mu       sync.RWMutex
	counters map[int64]*counter
}

// MemoryStore is a sharded in-process counter store. Writers to different
// shards never contend, and increments on an existing event only take a
// read lock.
type MemoryStore struct {
	shards [shardCount]*shard
	closed atomic.Bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.shards {
		s.shards[i] = &shard{counters: make(map[int64]*counter)}
	}
	return s
}

func (s *MemoryStore) shardFor(eventID int64) *shard {
	return s.shards[uint64(eventID)%shardCount]
}

func (s *MemoryStore) counterFor(eventID int64) *counter {
	sh := s.shardFor(eventID)

	sh.mu.RLock()
	c, ok := sh.counters[eventID]
	sh.mu.RUnlock()
	if ok {
		return c
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if c, ok = sh.counters[eventID]; ok {
		return c
	}
	c = &counter{}
	sh.counters[eventID] = c
	return c
}

// IncrView increments the view counter.
func (s *MemoryStore) IncrView(_ context.Context, eventID int64) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	s.counterFor(eventID).views.Add(1)
	return nil
}

// IncrAdd increments the schedule-add counter.
func (s *MemoryStore) IncrAdd(_ context.Context, eventID int64) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	s.counterFor(eventID).adds.Add(1)
	return nil
}

// Get returns counters for ids.
func (s *MemoryStore) Get(_ context.Context, ids []int64) (map[int64]Counts, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	out := make(map[int64]Counts, len(ids))
	for _, id := range ids {
		sh := s.shardFor(id)
		sh.mu.RLock()
		c, ok := sh.counters[id]
		sh.mu.RUnlock()
		if ok {
			out[id] = Counts{Views: c.views.Load(), Adds: c.adds.Load()}
		}
	}
	return out, nil
}

// Top returns up to limit events by descending weight. A non-positive
// limit returns every event.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]EventCounts, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	var all []EventCounts
	for _, sh := range s.shards {
		sh.mu.RLock()
		for id, c := range sh.counters {
			all = append(all, EventCounts{EventID: id, Counts: Counts{Views: c.views.Load(), Adds: c.adds.Load()}})
		}
		sh.mu.RUnlock()
	}
	sortByWeight(all)
	return truncate(all, limit), nil
}

// Len returns the number of tracked events.
func (s *MemoryStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.counters)
		sh.mu.RUnlock()
	}
	return n
}

// Name returns "memory".
func (s *MemoryStore) Name() string { return "memory" }

// Close marks the store closed.
func (s *MemoryStore) Close() error {
	s.closed.Store(true)
	return nil
}
