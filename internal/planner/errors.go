// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package planner

import "errors"

// ErrEventNotFound is returned when an operation names an event the
// catalogue does not contain.
var ErrEventNotFound = errors.New("event not found")
