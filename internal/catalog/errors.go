// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package catalog

import "errors"

var (
	// ErrInvalidCatalog wraps every validation failure found on load.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
