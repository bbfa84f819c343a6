// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"fmt"
)

// Config holds scoring weights and result limits.
type Config struct {
	Weights Weights

	// HighDemandThreshold is the popularity score an event must exceed.
	// Default: 70.
	HighDemandThreshold int

	// DefaultMaxTravelSeconds applies when a request sets no travel limit.
	// Default: 900.
	DefaultMaxTravelSeconds int

	Limits LimitsConfig
}

// Weights are the additive points per scoring rule.
type Weights struct {
	// ProgramMatch is awarded per matching study program.
	// Default: 20.
	ProgramMatch int
	// ProgramMatchCap caps the program contribution.
	// Default: 40.
	ProgramMatchCap int
	// CategoryMatch rewards a preferred event type.
	// Default: 15.
	CategoryMatch int
	// TimeFit rewards events inside an open slot.
	// Default: 15.
	TimeFit int
	// NoConflict rewards events that overlap nothing scheduled.
	// Default: 10.
	NoConflict int
	// HighDemand rewards popular events.
	// Default: 10.
	HighDemand int
	// Diversity rewards categories absent from the schedule.
	// Default: 5.
	Diversity int
	// TravelFit rewards events reachable in time from the previous stop.
	// Default: 5.
	TravelFit int
	// ViewedPenalty is subtracted for already viewed events.
	// Default: 5.
	ViewedPenalty int
}

// LimitsConfig bounds result sizes.
type LimitsConfig struct {
	// DefaultLimit applies when a request sets none.
	// Default: 10.
	DefaultLimit int
	// MaxLimit caps any request.
	// Default: 100.
	MaxLimit int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
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
		HighDemandThreshold:     70,
		DefaultMaxTravelSeconds: 900,
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	w := c.Weights
	for name, v := range map[string]int{
		"weights.program_match":  w.ProgramMatch,
		"weights.category_match": w.CategoryMatch,
		"weights.time_fit":       w.TimeFit,
		"weights.no_conflict":    w.NoConflict,
		"weights.high_demand":    w.HighDemand,
		"weights.diversity":      w.Diversity,
		"weights.travel_fit":     w.TravelFit,
		"weights.viewed_penalty": w.ViewedPenalty,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", name, v)
		}
	}
	if w.ProgramMatchCap < w.ProgramMatch {
		return fmt.Errorf("weights.program_match_cap must be >= program_match (%d), got %d", w.ProgramMatch, w.ProgramMatchCap)
	}

	if c.HighDemandThreshold < 0 || c.HighDemandThreshold > 100 {
		return fmt.Errorf("high_demand_threshold must be in [0, 100], got %d", c.HighDemandThreshold)
	}
	if c.DefaultMaxTravelSeconds < 0 {
		return fmt.Errorf("default_max_travel_seconds must be non-negative, got %d", c.DefaultMaxTravelSeconds)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit must be >= default_limit (%d), got %d", c.Limits.DefaultLimit, c.Limits.MaxLimit)
	}
	return nil
}
