// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package geo

import (
	"fmt"

	"github.com/tomtom215/openday/internal/cache"
	"github.com/tomtom215/openday/internal/metrics"
)

// CalculatorConfig holds the walking model tunables.
type CalculatorConfig struct {
	// Inflation multiplies straight-line distance. Default: DistanceInflation.
	Inflation float64
	// Speeds in m/s per profile. Defaults: SlowSpeed, NormalSpeed, FastSpeed.
	SlowSpeed   float64
	NormalSpeed float64
	FastSpeed   float64
	// CacheSize bounds the distance memo. Default: 4096.
	CacheSize int
}

// DefaultCalculatorConfig returns the package constants.
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		Inflation:   DistanceInflation,
		SlowSpeed:   SlowSpeed,
		NormalSpeed: NormalSpeed,
		FastSpeed:   FastSpeed,
		CacheSize:   4096,
	}
}

// Calculator computes distances and walking times with configurable
// tunables. Distances between the same pair of points are memoized.
// A Calculator is safe for concurrent use.
type Calculator struct {
	cfg  CalculatorConfig
	memo *cache.LRU[[4]float64, float64]
}

// NewCalculator builds a Calculator, filling zero fields from the defaults.
func NewCalculator(cfg CalculatorConfig) *Calculator {
	def := DefaultCalculatorConfig()
	if cfg.Inflation <= 0 {
		cfg.Inflation = def.Inflation
	}
	if cfg.SlowSpeed <= 0 {
		cfg.SlowSpeed = def.SlowSpeed
	}
	if cfg.NormalSpeed <= 0 {
		cfg.NormalSpeed = def.NormalSpeed
	}
	if cfg.FastSpeed <= 0 {
		cfg.FastSpeed = def.FastSpeed
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	return &Calculator{
		cfg:  cfg,
		memo: cache.NewLRU[[4]float64, float64](cfg.CacheSize, 0),
	}
}

// Distance returns the memoized great-circle distance in meters.
func (c *Calculator) Distance(a, b Coordinate) float64 {
	if a == b {
		return 0
	}
	// Symmetric key so a->b and b->a share an entry.
	key := [4]float64{a.Latitude, a.Longitude, b.Latitude, b.Longitude}
	if b.Latitude < a.Latitude || (b.Latitude == a.Latitude && b.Longitude < a.Longitude) {
		key = [4]float64{b.Latitude, b.Longitude, a.Latitude, a.Longitude}
	}
	d, hit := c.memo.GetOrCompute(key, func() float64 { return Distance(a, b) })
	metrics.RecordDistanceCache(hit)
	return d
}

// Speed returns the configured speed for profile in m/s.
func (c *Calculator) Speed(profile SpeedProfile) float64 {
	switch profile {
	case ProfileSlow:
		return c.cfg.SlowSpeed
	case ProfileFast:
		return c.cfg.FastSpeed
	default:
		return c.cfg.NormalSpeed
	}
}

// WalkingTime returns walking seconds for distanceMeters, rounded up.
func (c *Calculator) WalkingTime(distanceMeters float64, profile SpeedProfile) int {
	return walkingSeconds(distanceMeters, c.cfg.Inflation, c.Speed(profile))
}

// TravelTime returns distance and walking seconds between two points.
func (c *Calculator) TravelTime(a, b Coordinate, profile SpeedProfile) (meters float64, seconds int) {
	meters = c.Distance(a, b)
	return meters, c.WalkingTime(meters, profile)
}

// CacheStats reports distance memo hits, misses and entries.
func (c *Calculator) CacheStats() (hits, misses int64, entries int) {
	return c.memo.Stats()
}

// Inflation returns the configured distance inflation factor.
func (c *Calculator) Inflation() float64 {
	return c.cfg.Inflation
}

func (c *Calculator) String() string {
	return fmt.Sprintf("geo.Calculator(inflation=%.2f, speeds=%.2f/%.2f/%.2f)",
		c.cfg.Inflation, c.cfg.SlowSpeed, c.cfg.NormalSpeed, c.cfg.FastSpeed)
}
