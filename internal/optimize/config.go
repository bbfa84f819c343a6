// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package optimize

import (
	"fmt"
)

// Config holds the advisor tunables.
type Config struct {
	// MinGapMinutes is the shortest idle period reported as a gap.
	// Default: 30.
	MinGapMinutes int
	// MaxGapMinutes is the longest; longer breaks are treated as intentional.
	// Default: 480.
	MaxGapMinutes int
	// FillGapMinMinutes is the shortest gap worth a fill_gap suggestion.
	// Default: 45.
	FillGapMinMinutes int
	// DiversityThreshold is how many events of one category trigger an
	// add_diversity suggestion.
	// Default: 3.
	DiversityThreshold int

	// Default: 30.
	ConflictBenefit int
	// Default: 15.
	GapBenefit int
	// Default: 10.
	DiversityBenefit int

	// Default: 50.
	BaseScore int
	// Default: 15.
	ConflictPenalty int
	// Default: 5.
	CategoryBonus int
	// Default: 20.
	CategoryBonusCap int
	// Default: 2.
	EventBonus int
	// Default: 20.
	EventBonusCap int
	// Default: 2.
	GapPenalty int
	// Default: 10.
	GapPenaltyCap int
}

// DefaultConfig returns the standard advisor configuration.
func DefaultConfig() *Config {
	return &Config{
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
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MinGapMinutes < 1 {
		return fmt.Errorf("min_gap_minutes must be positive, got %d", c.MinGapMinutes)
	}
	if c.MaxGapMinutes < c.MinGapMinutes {
		return fmt.Errorf("max_gap_minutes must be >= min_gap_minutes (%d), got %d", c.MinGapMinutes, c.MaxGapMinutes)
	}
	if c.FillGapMinMinutes < 0 {
		return fmt.Errorf("fill_gap_min_minutes must be non-negative, got %d", c.FillGapMinMinutes)
	}
	if c.DiversityThreshold < 2 {
		return fmt.Errorf("diversity_threshold must be at least 2, got %d", c.DiversityThreshold)
	}
	if c.BaseScore < 0 || c.BaseScore > 100 {
		return fmt.Errorf("base_score must be in [0, 100], got %d", c.BaseScore)
	}
	if c.ConflictPenalty <= 0 {
		return fmt.Errorf("conflict_penalty must be positive, got %d", c.ConflictPenalty)
	}
	for name, v := range map[string]int{
		"conflict_benefit":   c.ConflictBenefit,
		"gap_benefit":        c.GapBenefit,
		"diversity_benefit":  c.DiversityBenefit,
		"category_bonus":     c.CategoryBonus,
		"category_bonus_cap": c.CategoryBonusCap,
		"event_bonus":        c.EventBonus,
		"event_bonus_cap":    c.EventBonusCap,
		"gap_penalty":        c.GapPenalty,
		"gap_penalty_cap":    c.GapPenaltyCap,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", name, v)
		}
	}
	return nil
}
