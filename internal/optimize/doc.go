// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package optimize reviews a visitor's schedule and produces a quality score
with ranked suggestions.

Analysis covers:

  - conflicts: every pair of scheduled events overlapping by a minute or more
  - gaps: idle time between consecutive events on the same day, within
    [MinGapMinutes, MaxGapMinutes]
  - diversity: counts by event type, study program and building

Suggestions are ordered by descending benefit; equal benefits keep the order
in which they were generated (conflicts, gaps, diversity).

Score:

	score = BaseScore
	      - ConflictPenalty * conflicts
	      + min(CategoryBonus * distinct categories, CategoryBonusCap)
	      + min(EventBonus * events, EventBonusCap)
	      - min(GapPenalty * gaps, GapPenaltyCap)

clamped to [0, 100]. An empty schedule scores 0.
*/
package optimize
