// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/openday/config.yaml",
	"/etc/openday/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// Defaults returns the built-in configuration without reading files or
// the environment.
func Defaults() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              8430,
			Host:              "0.0.0.0",
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Planner: PlannerConfig{
			DistanceInflation:  1.2,
			SlowSpeed:          1.0,
			NormalSpeed:        1.4,
			FastSpeed:          1.8,
			DefaultProfile:     "normal",
			BufferSeconds:      300,
			MinWarningSeconds:  600,
			LongDistanceMeters: 1500,
			MaxTravelSeconds:   900,
			DefaultLimit:       10,
			MaxLimit:           100,
			DistanceCacheSize:  4096,
			NearbyCellKm:       0.25,
			Scoring: ScoringConfig{
				ProgramMatch:    20,
				ProgramMatchCap: 40,
				CategoryMatch:   15,
				TimeFit:         15,
				NoConflict:      10,
				HighDemand:      10,
				Diversity:       5,
				TravelFit:       5,
				ViewedPenalty:   5,
			},
		},
		Optimize: OptimizeConfig{
			MinGapMinutes:      30,
			MaxGapMinutes:      480,
			FillGapMinMinutes:  45,
			DiversityThreshold: 3,
			ConflictBenefit:    30,
			GapBenefit:         15,
			DiversityBenefit:   10,
			BaseScore:          50,
			ConflictPenalty:    15,
			CategoryBonus:      5,
			CategoryBonusCap:   20,
			EventBonus:         2,
			EventBonusCap:      20,
			GapPenalty:         2,
			GapPenaltyCap:      10,
		},
		Popularity: PopularityConfig{
			Backend:             "memory",
			HighDemandThreshold: 70,
			ShortWindow:         15 * time.Minute,
			LongWindow:          2 * time.Hour,
			WindowBuckets:       12,
			RisingRatio:         1.5,
			FallingRatio:        0.5,
			MaxTrackedEvents:    10000,
			SnapshotSchedule:    "@every 5m",
			SnapshotTopN:        10,
			Redis: RedisConfig{
				Addr:        "localhost:6379",
				PoolSize:    10,
				KeyPrefix:   "openday:popularity:",
				DialTimeout: 5 * time.Second,
			},
			Badger: BadgerConfig{
				Path: "/data/popularity",
			},
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Catalog: CatalogConfig{
			Path: "catalog.yaml",
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration in three layers: struct defaults, an
// optional YAML file, then mapped environment variables. Later layers win.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// default path, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields splits comma-separated env values for slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored so the process environment cannot leak
// arbitrary keys into the config tree.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":          "server.cors_origins",
	"rate_limit_requests":   "server.rate_limit_requests",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Planner
	"distance_inflation":   "planner.distance_inflation",
	"walking_speed_slow":   "planner.slow_speed",
	"walking_speed_normal": "planner.normal_speed",
	"walking_speed_fast":   "planner.fast_speed",
	"walking_speed":        "planner.default_profile",
	"travel_buffer":        "planner.buffer_seconds",
	"travel_min_warning":   "planner.min_warning_seconds",
	"long_distance_meters": "planner.long_distance_meters",
	"max_travel_seconds":   "planner.max_travel_seconds",
	"recommend_limit":      "planner.default_limit",
	"recommend_max_limit":  "planner.max_limit",
	"distance_cache_size":  "planner.distance_cache_size",

	// Optimize
	"gap_min_minutes":      "optimize.min_gap_minutes",
	"gap_max_minutes":      "optimize.max_gap_minutes",
	"gap_fill_min_minutes": "optimize.fill_gap_min_minutes",

	// Popularity
	"popularity_backend":          "popularity.backend",
	"high_demand_threshold":       "popularity.high_demand_threshold",
	"popularity_short_window":     "popularity.short_window",
	"popularity_long_window":      "popularity.long_window",
	"popularity_snapshot":         "popularity.snapshot_schedule",
	"popularity_snapshot_top_n":   "popularity.snapshot_top_n",
	"redis_addr":                  "popularity.redis.addr",
	"redis_password":              "popularity.redis.password",
	"redis_db":                    "popularity.redis.db",
	"redis_pool_size":             "popularity.redis.pool_size",
	"redis_key_prefix":            "popularity.redis.key_prefix",
	"badger_path":                 "popularity.badger.path",
	"badger_in_memory":            "popularity.badger.in_memory",
	"popularity_breaker_timeout":  "popularity.breaker.timeout",
	"popularity_breaker_failures": "popularity.breaker.failure_threshold",

	// Catalog
	"catalog_path": "catalog.path",

	// Supervisor
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc converts an environment variable name to a koanf path.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - WALKING_SPEED -> planner.default_profile
//   - REDIS_ADDR -> popularity.redis.addr
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
