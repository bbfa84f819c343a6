// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package recommend

import (
	"sort"

	"github.com/tomtom215/openday/internal/models"
)

// minGroupSize suppresses singleton groups.
const minGroupSize = 2

// GroupRecommendations clusters recs by study-program name and by event
// category label. Groups with fewer than two members are dropped. The
// combined list is ordered by descending average score, then label, then
// type. Programs missing from programNames are not grouped.
func GroupRecommendations(recs []models.EventRecommendation, programNames map[int64]string) []models.RecommendationGroup {
	type key struct {
		label string
		typ   models.GroupType
	}
	members := make(map[key][]models.EventRecommendation)
	var order []key

	add := func(k key, r models.EventRecommendation) {
		if _, ok := members[k]; !ok {
			order = append(order, k)
		}
		members[k] = append(members[k], r)
	}

	grouped := make(map[int64]bool, len(recs))
	for _, r := range recs {
		if grouped[r.Event.ID] {
			continue
		}
		grouped[r.Event.ID] = true

		seen := make(map[string]bool, len(r.Event.StudyProgramIDs))
		for _, pid := range r.Event.StudyProgramIDs {
			name, ok := programNames[pid]
			if !ok || name == "" || seen[name] {
				continue
			}
			seen[name] = true
			add(key{name, models.GroupStudyProgram}, r)
		}
		add(key{r.Event.Category.Label(), models.GroupEventType}, r)
	}

	groups := make([]models.RecommendationGroup, 0, len(order))
	for _, k := range order {
		m := members[k]
		if len(m) < minGroupSize {
			continue
		}
		total := 0
		for _, r := range m {
			total += r.Score
		}
		groups = append(groups, models.RecommendationGroup{
			Label:           k.label,
			Type:            k.typ,
			Recommendations: m,
			AverageScore:    float64(total) / float64(len(m)),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].AverageScore != groups[j].AverageScore {
			return groups[i].AverageScore > groups[j].AverageScore
		}
		if groups[i].Label != groups[j].Label {
			return groups[i].Label < groups[j].Label
		}
		return groups[i].Type < groups[j].Type
	})

	return groups
}
