// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package cache provides thread-safe in-memory data structures used by the
planner.

# Components

  - LRU: generic least-recently-used cache with optional TTL. The geo
    calculator memoizes pairwise building distances in it.
  - SlidingWindowCounter and SlidingWindowStore: bucketed time windows that
    feed the popularity trend tag. A Clock can be injected for tests.
  - SpatialHashGrid: a generic grid over lat/lon cells used by the catalog
    for "buildings near me" lookups.

All types are safe for concurrent use.

# Usage Example

	memo := cache.NewLRU[string, float64](4096, 0)
	memo.Add("1:2", 350.5)
	d, ok := memo.Get("1:2")

	grid := cache.NewSpatialHashGrid[int64](0.25, geo.HaversineMeters)
	grid.Insert("12", 51.4988, -0.1749, 12)
	near := grid.QueryNearby(51.4990, -0.1750, 300)
*/
package cache
