// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"sort"

	"github.com/tomtom215/openday/internal/models"
)

// ApplyFilters drops recommendations that fail filters, stable-sorts the
// rest by descending score and truncates to limit. The input is not
// modified.
func ApplyFilters(recs []models.EventRecommendation, filters Filters, limit int) []models.EventRecommendation {
	out := make([]models.EventRecommendation, 0, len(recs))
	for _, r := range recs {
		if filters.ExcludeConflicts && r.HasConflict {
			continue
		}
		if filters.HighDemandOnly && !r.HighDemand {
			continue
		}
		if r.Score < filters.MinScore {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// effectiveLimit resolves a requested limit against the configured bounds.
func (c *Config) effectiveLimit(requested int) int {
	if requested <= 0 {
		return c.Limits.DefaultLimit
	}
	if requested > c.Limits.MaxLimit {
		return c.Limits.MaxLimit
	}
	return requested
}
