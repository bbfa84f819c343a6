// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// Package validation validates API request structs with
// go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Error field names follow the
// json tags so messages match what clients sent:
//
//	type nearbyRequest struct {
//	    Lat    float64 `json:"lat" validate:"latitude"`
//	    Lon    float64 `json:"lon" validate:"longitude"`
//	    Radius float64 `json:"radius" validate:"gt=0,lte=5000"`
//	}
//
// Besides the built-in tags, "category" accepts a known models.Category
// and "speed_profile" accepts slow, normal or fast (empty allowed).
//
// RequestValidationError.ToAPIError produces a models.APIError with code
// VALIDATION_ERROR.
package validation
