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
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	fieldViews = "views"
	fieldAdds  = "adds"
)

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	KeyPrefix   string
	DialTimeout time.Duration
}

// RedisStore keeps counters in Redis: a hash <prefix>event:<id> with views
// and adds fields, plus a <prefix>ranking sorted set scored by weight.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore connects and pings Redis.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.Addr == "" {
		opts.Addr = "localhost:6379"
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = 10
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 5 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return &RedisStore{rdb: rdb, prefix: opts.KeyPrefix}, nil
}

func (s *RedisStore) eventKey(eventID int64) string {
	return s.prefix + "event:" + strconv.FormatInt(eventID, 10)
}

func (s *RedisStore) rankingKey() string {
	return s.prefix + "ranking"
}

func (s *RedisStore) incr(ctx context.Context, eventID int64, field string, weight float64) error {
	member := strconv.FormatInt(eventID, 10)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, s.eventKey(eventID), field, 1)
	pipe.ZIncrBy(ctx, s.rankingKey(), weight, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment %s for event %d: %w", field, eventID, err)
	}
	return nil
}

// IncrView increments the view counter.
func (s *RedisStore) IncrView(ctx context.Context, eventID int64) error {
	return s.incr(ctx, eventID, fieldViews, 1)
}

// IncrAdd increments the schedule-add counter.
func (s *RedisStore) IncrAdd(ctx context.Context, eventID int64) error {
	return s.incr(ctx, eventID, fieldAdds, addWeight)
}

// Get reads counters for ids in one pipeline.
func (s *RedisStore) Get(ctx context.Context, ids []int64) (map[int64]Counts, error) {
	out := make(map[int64]Counts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.SliceCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HMGet(ctx, s.eventKey(id), fieldViews, fieldAdds)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read popularity counters: %w", err)
	}

	for i, cmd := range cmds {
		vals, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("read counters for event %d: %w", ids[i], err)
		}
		c, ok, err := parseCounts(vals)
		if err != nil {
			return nil, fmt.Errorf("parse counters for event %d: %w", ids[i], err)
		}
		if ok {
			out[ids[i]] = c
		}
	}
	return out, nil
}

// Top reads the ranking set and then the counters of its members.
func (s *RedisStore) Top(ctx context.Context, limit int) ([]EventCounts, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	members, err := s.rdb.ZRevRange(ctx, s.rankingKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("read popularity ranking: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	counts, err := s.Get(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]EventCounts, 0, len(ids))
	for _, id := range ids {
		if c, ok := counts[id]; ok {
			out = append(out, EventCounts{EventID: id, Counts: c})
		}
	}
	sortByWeight(out)
	return out, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Name returns "redis".
func (s *RedisStore) Name() string { return "redis" }

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// parseCounts converts an HMGET reply. ok is false when both fields are missing.
func parseCounts(vals []interface{}) (c Counts, ok bool, err error) {
	fields := []*int64{&c.Views, &c.Adds}
	for i, v := range vals {
		if i >= len(fields) || v == nil {
			continue
		}
		str, isStr := v.(string)
		if !isStr {
			return Counts{}, false, fmt.Errorf("unexpected value type %T", v)
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return Counts{}, false, err
		}
		*fields[i] = n
		ok = true
	}
	return c, ok, nil
}
