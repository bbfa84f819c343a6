// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validatePlanner(); err != nil {
		return err
	}
	if err := c.validateOptimize(); err != nil {
		return err
	}
	if err := c.validatePopularity(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("catalog.path is required")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitRequests < 1 {
			return fmt.Errorf("server.rate_limit_requests must be positive, got %d", c.Server.RateLimitRequests)
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("server.rate_limit_window must be positive, got %v", c.Server.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validatePlanner() error {
	p := c.Planner
	if p.DistanceInflation < 1 {
		return fmt.Errorf("planner.distance_inflation must be >= 1, got %f", p.DistanceInflation)
	}
	if p.SlowSpeed <= 0 || p.NormalSpeed <= 0 || p.FastSpeed <= 0 {
		return fmt.Errorf("planner walking speeds must be positive")
	}
	if !(p.SlowSpeed < p.NormalSpeed && p.NormalSpeed < p.FastSpeed) {
		return fmt.Errorf("planner walking speeds must satisfy slow < normal < fast, got %.2f/%.2f/%.2f",
			p.SlowSpeed, p.NormalSpeed, p.FastSpeed)
	}
	switch strings.ToLower(p.DefaultProfile) {
	case "slow", "normal", "fast":
	default:
		return fmt.Errorf("planner.default_profile must be slow, normal or fast, got %q", p.DefaultProfile)
	}
	if p.BufferSeconds < 0 {
		return fmt.Errorf("planner.buffer_seconds must be non-negative, got %d", p.BufferSeconds)
	}
	if p.MinWarningSeconds < 0 {
		return fmt.Errorf("planner.min_warning_seconds must be non-negative, got %d", p.MinWarningSeconds)
	}
	if p.LongDistanceMeters <= 0 {
		return fmt.Errorf("planner.long_distance_meters must be positive, got %f", p.LongDistanceMeters)
	}
	if p.DefaultLimit < 1 {
		return fmt.Errorf("planner.default_limit must be positive, got %d", p.DefaultLimit)
	}
	if p.MaxLimit < p.DefaultLimit {
		return fmt.Errorf("planner.max_limit (%d) must be >= default_limit (%d)", p.MaxLimit, p.DefaultLimit)
	}
	if p.Scoring.ProgramMatchCap < p.Scoring.ProgramMatch {
		return fmt.Errorf("planner.scoring.program_match_cap (%d) must be >= program_match (%d)",
			p.Scoring.ProgramMatchCap, p.Scoring.ProgramMatch)
	}
	return nil
}

func (c *Config) validateOptimize() error {
	o := c.Optimize
	if o.MinGapMinutes < 0 || o.MaxGapMinutes < o.MinGapMinutes {
		return fmt.Errorf("optimize gap bounds invalid: min=%d max=%d", o.MinGapMinutes, o.MaxGapMinutes)
	}
	if o.DiversityThreshold < 2 {
		return fmt.Errorf("optimize.diversity_threshold must be >= 2, got %d", o.DiversityThreshold)
	}
	if o.BaseScore < 0 || o.BaseScore > 100 {
		return fmt.Errorf("optimize.base_score must be within [0,100], got %d", o.BaseScore)
	}
	return nil
}

func (c *Config) validatePopularity() error {
	p := c.Popularity
	switch strings.ToLower(p.Backend) {
	case "memory":
	case "redis":
		if p.Redis.Addr == "" {
			return fmt.Errorf("popularity.redis.addr is required for the redis backend")
		}
	case "badger":
		if p.Badger.Path == "" && !p.Badger.InMemory {
			return fmt.Errorf("popularity.badger.path is required unless in_memory is set")
		}
	default:
		return fmt.Errorf("popularity.backend must be memory, redis or badger, got %q", p.Backend)
	}
	if p.HighDemandThreshold < 0 || p.HighDemandThreshold > 100 {
		return fmt.Errorf("popularity.high_demand_threshold must be within [0,100], got %d", p.HighDemandThreshold)
	}
	if p.ShortWindow <= 0 || p.LongWindow <= p.ShortWindow {
		return fmt.Errorf("popularity windows must satisfy 0 < short_window < long_window, got %v/%v",
			p.ShortWindow, p.LongWindow)
	}
	if p.FallingRatio <= 0 || p.RisingRatio <= p.FallingRatio {
		return fmt.Errorf("popularity ratios must satisfy 0 < falling_ratio < rising_ratio, got %f/%f",
			p.FallingRatio, p.RisingRatio)
	}
	// An empty schedule disables the snapshot job.
	if p.SnapshotSchedule != "" {
		if _, err := cron.ParseStandard(p.SnapshotSchedule); err != nil {
			return fmt.Errorf("popularity.snapshot_schedule %q: %w", p.SnapshotSchedule, err)
		}
		if p.SnapshotTopN <= 0 {
			return fmt.Errorf("popularity.snapshot_top_n must be positive, got %d", p.SnapshotTopN)
		}
	}
	return nil
}
