// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for unmapped values.
var ErrUnknownCategory = errors.New("unknown event category")

// Category is the closed set of event types. Adding a value requires
// extending Valid, Label and Color.
type Category string

const (
	CategoryLecture     Category = "lecture"
	CategoryWorkshop    Category = "workshop"
	CategoryLabTour     Category = "lab_tour"
	CategoryInfoSession Category = "info_session"
	CategoryCampusTour  Category = "campus_tour"
	CategoryQAndA       Category = "q_and_a"
	CategoryExhibition  Category = "exhibition"
	CategoryOther       Category = "other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryLecture,
		CategoryWorkshop,
		CategoryLabTour,
		CategoryInfoSession,
		CategoryCampusTour,
		CategoryQAndA,
		CategoryExhibition,
		CategoryOther,
	}
}

// ParseCategory parses a category identifier (case-insensitive, '-' and
// ' ' accepted in place of '_').
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	c := Category(norm)
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryLecture, CategoryWorkshop, CategoryLabTour, CategoryInfoSession,
		CategoryCampusTour, CategoryQAndA, CategoryExhibition, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable group label.
func (c Category) Label() string {
	switch c {
	case CategoryLecture:
		return "Lectures"
	case CategoryWorkshop:
		return "Workshops"
	case CategoryLabTour:
		return "Lab Tours"
	case CategoryInfoSession:
		return "Info Sessions"
	case CategoryCampusTour:
		return "Campus Tours"
	case CategoryQAndA:
		return "Q&A Sessions"
	case CategoryExhibition:
		return "Exhibitions"
	case CategoryOther:
		return "Other Events"
	}
	return "Other Events"
}

// Color returns the display color as a hex string.
func (c Category) Color() string {
	switch c {
	case CategoryLecture:
		return "#2563eb"
	case CategoryWorkshop:
		return "#16a34a"
	case CategoryLabTour:
		return "#9333ea"
	case CategoryInfoSession:
		return "#0891b2"
	case CategoryCampusTour:
		return "#ea580c"
	case CategoryQAndA:
		return "#db2777"
	case CategoryExhibition:
		return "#ca8a04"
	case CategoryOther:
		return "#6b7280"
	}
	return "#6b7280"
}
