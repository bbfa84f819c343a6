// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package recommend scores candidate events against a visitor's schedule and
interests, filters and ranks them, and clusters the result into groups.

# Scoring

Scoring is strictly additive and clamped to [0, 100]. With the default
Weights:

	+20 per matching study program, capped at 40
	+15 preferred event type
	+15 fits inside an open time slot
	+10 no overlap with any scheduled item
	+10 high demand (popularity score above the threshold)
	+5  category not yet in the schedule
	+5  reachable on foot from the preceding scheduled event
	-5  already viewed

Every rule that fires adds a RecommendationReason; when none fires a
general reason is added so the list is never empty.

# Pipeline

Engine.Recommend scores every candidate not already scheduled, applies
Filters (conflicts, high demand, minimum score), stable-sorts by descending
score so ties keep catalogue order, truncates to the limit and groups the
survivors. Scoring reads only immutable inputs; popularity scores are fetched
once per call from the configured PopularitySource.
*/
package recommend
