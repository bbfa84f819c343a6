// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package geo provides the geospatial primitives used for campus routing.

Distance is the Haversine great-circle distance on a sphere of radius
EarthRadiusMeters. WalkingTime inflates that straight-line distance by
DistanceInflation to approximate real paths (corners, crossings, stairs)
and divides by a speed profile:

	d := geo.Distance(library, physics)        // meters
	s := geo.WalkingTime(d, geo.ProfileNormal) // whole seconds, rounded up

A Calculator carries configurable tunables and memoizes pairwise distances
between buildings in an LRU cache.
*/
package geo
