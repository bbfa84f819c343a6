// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package route

import (
	"fmt"

	"github.com/tomtom215/openday/internal/geo"
)

// TravelSettings holds resolved feasibility settings.
type TravelSettings struct {
	// Profile selects the walking speed.
	// Default: normal.
	Profile geo.SpeedProfile `json:"profile"`

	// BufferSeconds is the safety margin added to every walk.
	// Default: 300.
	BufferSeconds int `json:"buffer_seconds"`

	// MinWarningSeconds is the margin below which a transfer is tight.
	// Default: 600.
	MinWarningSeconds int `json:"min_warning_seconds"`
}

// TravelOptions overrides the configured settings for one request. Nil
// fields fall back to the defaults; an explicit zero is kept.
type TravelOptions struct {
	Profile           geo.SpeedProfile `json:"profile"`
	BufferSeconds     *int             `json:"buffer_seconds"`
	MinWarningSeconds *int             `json:"min_warning_seconds"`
}

// Seconds returns a pointer to n for use in TravelOptions.
func Seconds(n int) *int { return &n }

// DefaultTravelSettings returns the standard settings.
func DefaultTravelSettings() TravelSettings {
	return TravelSettings{
		Profile:           geo.ProfileNormal,
		BufferSeconds:     300,
		MinWarningSeconds: 600,
	}
}

// Config holds assembler configuration.
type Config struct {
	// LongDistanceMeters triggers an info warning on longer legs.
	// Default: 1500.
	LongDistanceMeters float64

	// Defaults fills unset request settings.
	Defaults TravelSettings
}

// DefaultConfig returns the standard assembler configuration.
func DefaultConfig() *Config {
	return &Config{
		LongDistanceMeters: 1500,
		Defaults:           DefaultTravelSettings(),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.LongDistanceMeters <= 0 {
		return fmt.Errorf("long_distance_meters must be positive, got %f", c.LongDistanceMeters)
	}
	if c.Defaults.BufferSeconds < 0 {
		return fmt.Errorf("buffer_seconds must be non-negative, got %d", c.Defaults.BufferSeconds)
	}
	if c.Defaults.MinWarningSeconds < 0 {
		return fmt.Errorf("min_warning_seconds must be non-negative, got %d", c.Defaults.MinWarningSeconds)
	}
	if _, err := geo.ParseSpeedProfile(string(c.Defaults.Profile)); err != nil {
		return fmt.Errorf("default profile: %w", err)
	}
	return nil
}

// withDefaults resolves o against the configured defaults.
func (c *Config) withDefaults(o TravelOptions) TravelSettings {
	s := c.Defaults
	if o.Profile != "" {
		s.Profile = o.Profile
	}
	if o.BufferSeconds != nil {
		s.BufferSeconds = *o.BufferSeconds
	}
	if o.MinWarningSeconds != nil {
		s.MinWarningSeconds = *o.MinWarningSeconds
	}
	return s
}
