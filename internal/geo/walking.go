// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package geo

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// DistanceInflation converts straight-line distance into an estimated
// walking path length.
const DistanceInflation = 1.2

// Walking speeds in meters per second.
const (
	SlowSpeed   = 1.0
	NormalSpeed = 1.4
	FastSpeed   = 1.8
)

// ErrUnknownProfile is returned by ParseSpeedProfile.
var ErrUnknownProfile = errors.New("unknown walking speed profile")

// SpeedProfile selects a walking speed.
type SpeedProfile string

const (
	ProfileSlow   SpeedProfile = "slow"
	ProfileNormal SpeedProfile = "normal"
	ProfileFast   SpeedProfile = "fast"
)

// ParseSpeedProfile parses "slow", "normal" or "fast" (case-insensitive).
// An empty string yields ProfileNormal.
func ParseSpeedProfile(s string) (SpeedProfile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ProfileNormal, nil
	case string(ProfileSlow):
		return ProfileSlow, nil
	case string(ProfileNormal):
		return ProfileNormal, nil
	case string(ProfileFast):
		return ProfileFast, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

// MetersPerSecond returns the profile's default speed. Unknown profiles
// walk at normal speed.
func (p SpeedProfile) MetersPerSecond() float64 {
	switch p {
	case ProfileSlow:
		return SlowSpeed
	case ProfileFast:
		return FastSpeed
	default:
		return NormalSpeed
	}
}

// WalkingTime returns the seconds needed to walk distanceMeters at the
// profile's speed, rounded up. Non-positive distances take zero seconds.
func WalkingTime(distanceMeters float64, profile SpeedProfile) int {
	return walkingSeconds(distanceMeters, DistanceInflation, profile.MetersPerSecond())
}

func walkingSeconds(distanceMeters, inflation, speed float64) int {
	if distanceMeters <= 0 || speed <= 0 || math.IsNaN(distanceMeters) {
		return 0
	}
	return int(math.Ceil(distanceMeters * inflation / speed))
}
