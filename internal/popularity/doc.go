// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package popularity counts how often events are viewed and added to
schedules, and derives a 0-100 popularity score and a short-term trend.

# Score

	score = min(100, floor((views + adds*10) / 2))

An event is high demand when its score exceeds the configured threshold
(default 70).

# Backends

Counters live behind the Store interface:

  - MemoryStore: 32 shards of RWMutex-guarded maps holding atomic counters
  - RedisStore: one hash per event plus a ranking sorted set, updated in a
    MULTI/EXEC pipeline so several processes can share counts
  - BadgerStore: durable JSON records under pop:<id>

ResilientStore wraps Redis or Badger with a circuit breaker and keeps an
in-memory shadow so reads and writes keep working while the backend is down.

# Trend

Tracker keeps two in-process sliding windows (default 15m and 2h). The trend
is rising when the short-window rate exceeds the long-window rate by
RisingRatio, falling when it drops below FallingRatio, and stable otherwise
or when there is no recent activity. Trend state is per process and is not
shared through Redis.
*/
package popularity
