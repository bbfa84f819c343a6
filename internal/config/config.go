// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: explicit mapping table in envTransformFunc
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Planner    PlannerConfig    `koanf:"planner"`
	Optimize   OptimizeConfig   `koanf:"optimize"`
	Popularity PopularityConfig `koanf:"popularity"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT, HTTP_HOST
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - CORS_ORIGINS: comma-separated list
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	// RateLimitRequests is the per-IP request budget per RateLimitWindow.
	// Default: 120
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// PlannerConfig holds routing, travel and recommendation tunables.
type PlannerConfig struct {
	// DistanceInflation multiplies straight-line distance to approximate
	// real walking paths (corners, crossings, stairs).
	// Default: 1.2
	DistanceInflation float64 `koanf:"distance_inflation"`

	// SlowSpeed, NormalSpeed and FastSpeed are walking speeds in m/s.
	// Defaults: 1.0, 1.4, 1.8
	SlowSpeed   float64 `koanf:"slow_speed"`
	NormalSpeed float64 `koanf:"normal_speed"`
	FastSpeed   float64 `koanf:"fast_speed"`

	// DefaultProfile is used when a request omits the walking speed.
	// Default: normal
	DefaultProfile string `koanf:"default_profile"`

	// BufferSeconds is the safety buffer added to walking time.
	// Default: 300
	BufferSeconds int `koanf:"buffer_seconds"`

	// MinWarningSeconds is the margin below which a transfer is "tight".
	// Default: 600
	MinWarningSeconds int `koanf:"min_warning_seconds"`

	// LongDistanceMeters triggers an informational route warning.
	// Default: 1500
	LongDistanceMeters float64 `koanf:"long_distance_meters"`

	// MaxTravelSeconds is the default acceptable walk for the travel-fit bonus.
	// Default: 900
	MaxTravelSeconds int `koanf:"max_travel_seconds"`

	// DefaultLimit and MaxLimit bound recommendation list sizes.
	// Defaults: 10, 100
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`

	// DistanceCacheSize is the capacity of the pairwise distance memo.
	// Default: 4096
	DistanceCacheSize int `koanf:"distance_cache_size"`

	// NearbyCellKm is the spatial grid cell size for building lookups.
	// Default: 0.25
	NearbyCellKm float64 `koanf:"nearby_cell_km"`

	Scoring ScoringConfig `koanf:"scoring"`
}

// ScoringConfig holds the additive recommendation points.
type ScoringConfig struct {
	ProgramMatch    int `koanf:"program_match"`
	ProgramMatchCap int `koanf:"program_match_cap"`
	CategoryMatch   int `koanf:"category_match"`
	TimeFit         int `koanf:"time_fit"`
	NoConflict      int `koanf:"no_conflict"`
	HighDemand      int `koanf:"high_demand"`
	Diversity       int `koanf:"diversity"`
	TravelFit       int `koanf:"travel_fit"`
	ViewedPenalty   int `koanf:"viewed_penalty"`
}

// OptimizeConfig holds schedule optimization tunables.
type OptimizeConfig struct {
	MinGapMinutes      int `koanf:"min_gap_minutes"`
	MaxGapMinutes      int `koanf:"max_gap_minutes"`
	FillGapMinMinutes  int `koanf:"fill_gap_min_minutes"`
	DiversityThreshold int `koanf:"diversity_threshold"`

	ConflictBenefit  int `koanf:"conflict_benefit"`
	GapBenefit       int `koanf:"gap_benefit"`
	DiversityBenefit int `koanf:"diversity_benefit"`

	BaseScore        int `koanf:"base_score"`
	ConflictPenalty  int `koanf:"conflict_penalty"`
	CategoryBonus    int `koanf:"category_bonus"`
	CategoryBonusCap int `koanf:"category_bonus_cap"`
	EventBonus       int `koanf:"event_bonus"`
	EventBonusCap    int `koanf:"event_bonus_cap"`
	GapPenalty       int `koanf:"gap_penalty"`
	GapPenaltyCap    int `koanf:"gap_penalty_cap"`
}

// PopularityConfig selects and tunes the popularity counter backend.
//
// Environment Variables:
//   - POPULARITY_BACKEND: memory, redis, badger (default: memory)
//   - HIGH_DEMAND_THRESHOLD (default: 70)
//   - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_POOL_SIZE, REDIS_KEY_PREFIX
//   - BADGER_PATH, BADGER_IN_MEMORY
type PopularityConfig struct {
	Backend             string `koanf:"backend"`
	HighDemandThreshold int    `koanf:"high_demand_threshold"`

	// ShortWindow and LongWindow drive the trend tag.
	// Defaults: 15m, 2h
	ShortWindow   time.Duration `koanf:"short_window"`
	LongWindow    time.Duration `koanf:"long_window"`
	WindowBuckets int           `koanf:"window_buckets"`
	RisingRatio   float64       `koanf:"rising_ratio"`
	FallingRatio  float64       `koanf:"falling_ratio"`

	// MaxTrackedEvents bounds the trend window store.
	// Default: 10000
	MaxTrackedEvents int `koanf:"max_tracked_events"`

	// SnapshotSchedule is a cron spec for the popularity snapshot job.
	// Default: @every 5m
	SnapshotSchedule string `koanf:"snapshot_schedule"`
	SnapshotTopN     int    `koanf:"snapshot_top_n"`

	Redis   RedisConfig   `koanf:"redis"`
	Badger  BadgerConfig  `koanf:"badger"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// RedisConfig holds the shared counter connection settings.
type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	PoolSize    int           `koanf:"pool_size"`
	KeyPrefix   string        `koanf:"key_prefix"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// BadgerConfig holds the durable counter store settings.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// BreakerConfig tunes the circuit breaker guarding external counter stores.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// CatalogConfig points at the event catalogue snapshot.
type CatalogConfig struct {
	// Path is a .yaml, .yml or .json catalogue file.
	// Default: catalog.yaml
	Path string `koanf:"path"`
}

// SupervisorConfig holds suture tree settings.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Load reads configuration from defaults, an optional config file and the
// environment. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
