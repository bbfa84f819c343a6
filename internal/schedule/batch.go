// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package schedule

import (
	"github.com/tomtom215/openday/internal/models"
)

// BatchAdd applies candidateIDs to the schedule in input order.
//
// Each candidate is checked against the existing schedule and against the
// candidates already accepted in this batch. With skipConflicts a
// conflicting candidate is skipped; without it the candidate is accepted
// and both it and any earlier accepted candidate it overlaps are listed in
// Conflicting. Conflicts with pre-existing items are reported through the
// candidate only.
//
// Candidates that are already scheduled, repeated within the batch, or
// unknown to lookup are skipped with a reason rather than failing the call.
func BatchAdd(candidateIDs []int64, lookup models.EventLookup, snapshot models.ScheduleSnapshot, skipConflicts bool) models.BatchResult {
	result := models.BatchResult{
		Added:       []int64{},
		Skipped:     []int64{},
		Conflicting: []int64{},
	}

	existing := snapshot.Events()
	accepted := make([]models.Event, 0, len(candidateIDs))
	seen := make(map[int64]struct{}, len(candidateIDs))
	conflicting := make(map[int64]struct{})

	markConflicting := func(id int64) {
		if _, ok := conflicting[id]; ok {
			return
		}
		conflicting[id] = struct{}{}
		result.Conflicting = append(result.Conflicting, id)
	}
	skip := func(id int64, code models.SkipReasonCode, with []int64) {
		result.Skipped = append(result.Skipped, id)
		result.SkipReasons = append(result.SkipReasons, models.SkipReason{
			EventID:       id,
			Reason:        code,
			ConflictsWith: with,
		})
	}

	for _, id := range candidateIDs {
		if _, dup := seen[id]; dup {
			skip(id, models.SkipDuplicate, nil)
			continue
		}
		seen[id] = struct{}{}

		if snapshot.Contains(id) {
			skip(id, models.SkipAlreadyScheduled, nil)
			continue
		}

		event, ok := lookup.Event(id)
		if !ok {
			skip(id, models.SkipNotFound, nil)
			continue
		}

		withExisting := Conflicts(event, existing)
		withBatch := Conflicts(event, accepted)

		if len(withExisting)+len(withBatch) > 0 {
			if skipConflicts {
				skip(id, models.SkipConflict, append(withExisting, withBatch...))
				continue
			}
			for _, other := range withBatch {
				markConflicting(other)
			}
			markConflicting(id)
		}

		accepted = append(accepted, event)
		result.Added = append(result.Added, id)
	}

	result.AddedCount = len(result.Added)
	result.SkippedCount = len(result.Skipped)
	result.ConflictingCount = len(result.Conflicting)
	return result
}
