// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package config

import (
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"defaults", func(*Config) {}, false},
		{"rate limit disabled ignores window", func(c *Config) {
			c.Server.RateLimitDisabled = true
			c.Server.RateLimitWindow = 0
		}, false},
		{"zero rate limit window", func(c *Config) { c.Server.RateLimitWindow = 0 }, true},
		{"inflation below one", func(c *Config) { c.Planner.DistanceInflation = 0.9 }, true},
		{"speeds out of order", func(c *Config) { c.Planner.FastSpeed = 1.2 }, true},
		{"zero speed", func(c *Config) { c.Planner.SlowSpeed = 0 }, true},
		{"negative buffer", func(c *Config) { c.Planner.BufferSeconds = -1 }, true},
		{"max limit below default", func(c *Config) { c.Planner.MaxLimit = 5 }, true},
		{"program cap below step", func(c *Config) { c.Planner.Scoring.ProgramMatchCap = 10 }, true},
		{"diversity threshold one", func(c *Config) { c.Optimize.DiversityThreshold = 1 }, true},
		{"base score above 100", func(c *Config) { c.Optimize.BaseScore = 120 }, true},
		{"redis without addr", func(c *Config) {
			c.Popularity.Backend = "redis"
			c.Popularity.Redis.Addr = ""
		}, true},
		{"badger in memory without path", func(c *Config) {
			c.Popularity.Backend = "badger"
			c.Popularity.Badger.Path = ""
			c.Popularity.Badger.InMemory = true
		}, false},
		{"threshold above 100", func(c *Config) { c.Popularity.HighDemandThreshold = 101 }, true},
		{"short window not shorter", func(c *Config) { c.Popularity.ShortWindow = 3 * time.Hour }, true},
		{"ratios inverted", func(c *Config) { c.Popularity.RisingRatio = 0.4 }, true},
		{"snapshot disabled", func(c *Config) {
			c.Popularity.SnapshotSchedule = ""
			c.Popularity.SnapshotTopN = 0
		}, false},
		{"snapshot cron expression", func(c *Config) { c.Popularity.SnapshotSchedule = "*/10 * * * *" }, false},
		{"malformed snapshot schedule", func(c *Config) { c.Popularity.SnapshotSchedule = "every so often" }, true},
		{"snapshot top n zero", func(c *Config) { c.Popularity.SnapshotTopN = 0 }, true},
		{"empty catalog path", func(c *Config) { c.Catalog.Path = " " }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8430}
	if got := s.Addr(); got != "127.0.0.1:8430" {
		t.Errorf("Addr() = %q", got)
	}
	s = ServerConfig{Host: "::1", Port: 80}
	if got := s.Addr(); got != "[::1]:80" {
		t.Errorf("Addr() = %q", got)
	}
}
