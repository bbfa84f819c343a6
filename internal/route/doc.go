// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package route assembles walking routes between campus buildings and checks
whether a visitor can make each transfer in time.

Legs are straight two-point lines between consecutive waypoints; no path
finding or obstacle avoidance is modeled. The walking model (inflation and
speeds) comes from geo.Calculator.

Warnings on a leg come from two independent rules:

  - timing, for legs between two timed event stops:
    error when the gap is shorter than the walk, warning when the walk fits
    but the safety buffer does not
  - distance, an info warning for legs longer than LongDistanceMeters

Routing degrades instead of failing: fewer than two waypoints gives an empty
route, and a waypoint without coordinates yields a zero-length leg with no
timing check.
*/
package route
