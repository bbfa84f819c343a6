// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package popularity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const (
	badgerKeyPrefix = "pop:"
	// maxTxnRetries bounds read-modify-write retries on transaction conflicts.
	maxTxnRetries = 5
)

// BadgerOptions configures a BadgerStore.
type BadgerOptions struct {
	Path     string
	InMemory bool
}

// BadgerStore keeps counters durably in BadgerDB as JSON {views, adds}
// under pop:<id>.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens the database. InMemory ignores Path.
func NewBadgerStore(opts BadgerOptions) (*BadgerStore, error) {
	dbOpts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.InMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	return &BadgerStore{db: db}, nil
}

func badgerKey(eventID int64) []byte {
	return []byte(badgerKeyPrefix + strconv.FormatInt(eventID, 10))
}

func (s *BadgerStore) incr(eventID int64, apply func(*Counts)) error {
	key := badgerKey(eventID)
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			var c Counts
			item, err := txn.Get(key)
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
			case err != nil:
				return fmt.Errorf("get counters: %w", err)
			default:
				if err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &c)
				}); err != nil {
					return fmt.Errorf("decode counters: %w", err)
				}
			}

			apply(&c)

			data, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("encode counters: %w", err)
			}
			return txn.Set(key, data)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("update counters for event %d: %w", eventID, err)
	}
	return nil
}

// IncrView increments the view counter.
func (s *BadgerStore) IncrView(_ context.Context, eventID int64) error {
	return s.incr(eventID, func(c *Counts) { c.Views++ })
}

// IncrAdd increments the schedule-add counter.
func (s *BadgerStore) IncrAdd(_ context.Context, eventID int64) error {
	return s.incr(eventID, func(c *Counts) { c.Adds++ })
}

// Get returns counters for ids.
func (s *BadgerStore) Get(_ context.Context, ids []int64) (map[int64]Counts, error) {
	out := make(map[int64]Counts, len(ids))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get(badgerKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get counters for event %d: %w", id, err)
			}
			var c Counts
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			}); err != nil {
				return fmt.Errorf("decode counters for event %d: %w", id, err)
			}
			out[id] = c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Top scans every counter record.
func (s *BadgerStore) Top(_ context.Context, limit int) ([]EventCounts, error) {
	var all []EventCounts
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			id, err := strconv.ParseInt(strings.TrimPrefix(string(item.Key()), badgerKeyPrefix), 10, 64)
			if err != nil {
				continue
			}
			var c Counts
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			}); err != nil {
				return fmt.Errorf("decode counters for event %d: %w", id, err)
			}
			all = append(all, EventCounts{EventID: id, Counts: c})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByWeight(all)
	return truncate(all, limit), nil
}

// Name returns "badger".
func (s *BadgerStore) Name() string { return "badger" }

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
