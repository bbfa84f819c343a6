// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package models defines the data structures shared by the Openday engine.

Catalogue records (Event, Location, StudyProgram) are immutable snapshots
supplied by the catalogue layer. A visitor's working schedule is wrapped in a
ScheduleSnapshot once per request and handed to every engine component, so
scoring, batch scheduling, routing and optimization all read the same view.

Model Categories:

1. Catalogue records:
  - Event, Location, StudyProgram
  - Category: closed enumeration with exhaustive Label/Color mappings

2. Schedule:
  - ScheduledItem, ScheduleSnapshot, TimeWindow, BatchResult

3. Routing:
  - Waypoint, RouteLeg, Route, RouteWarning, TravelTimeAnalysis

4. Recommendation and optimization results:
  - RecommendationReason, EventRecommendation, RecommendationGroup
  - ScheduleConflict, ScheduleGap, DiversityReport, OptimizationSuggestion,
    ScheduleOptimizationResult
  - PopularityRecord

5. API envelope:
  - APIResponse, APIError, Metadata
*/
package models
