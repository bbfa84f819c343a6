// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package planner is the service facade over the catalogue and the planning
engines. The HTTP layer and cmd/server talk to a *Planner only.

A Planner resolves event IDs against the catalogue, builds the visitor's
schedule snapshot, and delegates to:

  - recommend.Engine for scoring and recommendations
  - schedule.BatchAdd for multi-event adds
  - optimize.Advisor for schedule analysis
  - route.Assembler for routes and travel feasibility
  - popularity.Tracker for view and add counters
  - ics for calendar export

Unknown IDs in schedule lists are skipped. Operations on a single event
return ErrEventNotFound when the ID is unknown.

Metrics for routes, travel checks, batches and analyses are recorded here;
the recommendation engine records its own.
*/
package planner
