// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package catalog holds the read-only open-day catalogue: events, campus
buildings and study programs.

The catalogue is loaded once from a YAML (.yaml, .yml) or JSON (.json) file:

	locations:
	  - id: 1
	    name: Main Hall
	    short_name: MH
	    latitude: 52.2000
	    longitude: 0.1200
	programs:
	  - id: 10
	    name: Physics
	events:
	  - id: 100
	    title: Welcome Lecture
	    category: lecture
	    start_time: 2026-05-09T10:00:00Z
	    end_time: 2026-05-09T11:00:00Z
	    location_id: 1
	    study_program_ids: [10]

Loading rejects duplicate IDs, buildings with out-of-range coordinates,
events that end before they start and unknown categories. Events pointing at
unknown buildings are kept and logged; they simply do not take part in
routing.

Building lookups by coordinate use a spatial hash grid.
*/
package catalog
