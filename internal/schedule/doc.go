// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// Package schedule implements interval-overlap arithmetic and the batch
// scheduler. Everything here is pure and deterministic: candidates are
// processed strictly in input order, so "conflicts with an earlier accepted
// candidate" always means the same thing for the same input.
package schedule
