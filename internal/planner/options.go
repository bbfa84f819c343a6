// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package planner

import (
	"github.com/tomtom215/openday/internal/config"
	"github.com/tomtom215/openday/internal/geo"
	"github.com/tomtom215/openday/internal/ics"
	"github.com/tomtom215/openday/internal/optimize"
	"github.com/tomtom215/openday/internal/recommend"
	"github.com/tomtom215/openday/internal/route"
)

// Options configures the engines a Planner builds. Nil fields use each
// package's defaults.
type Options struct {
	Calculator   geo.CalculatorConfig
	Recommend    *recommend.Config
	Route        *route.Config
	Optimize     *optimize.Config
	CalendarName string
}

// DefaultOptions returns options with every engine at its defaults.
func DefaultOptions() Options {
	return Options{
		Calculator:   geo.DefaultCalculatorConfig(),
		Recommend:    recommend.DefaultConfig(),
		Route:        route.DefaultConfig(),
		Optimize:     optimize.DefaultConfig(),
		CalendarName: ics.DefaultCalendarName,
	}
}

// OptionsFromConfig maps the service configuration onto engine options.
func OptionsFromConfig(cfg *config.Config) Options {
	p := cfg.Planner
	s := p.Scoring
	o := cfg.Optimize

	return Options{
		Calculator: geo.CalculatorConfig{
			Inflation:   p.DistanceInflation,
			SlowSpeed:   p.SlowSpeed,
			NormalSpeed: p.NormalSpeed,
			FastSpeed:   p.FastSpeed,
			CacheSize:   p.DistanceCacheSize,
		},
		Recommend: &recommend.Config{
			Weights: recommend.Weights{
				ProgramMatch:    s.ProgramMatch,
				ProgramMatchCap: s.ProgramMatchCap,
				CategoryMatch:   s.CategoryMatch,
				TimeFit:         s.TimeFit,
				NoConflict:      s.NoConflict,
				HighDemand:      s.HighDemand,
				Diversity:       s.Diversity,
				TravelFit:       s.TravelFit,
				ViewedPenalty:   s.ViewedPenalty,
			},
			HighDemandThreshold:     cfg.Popularity.HighDemandThreshold,
			DefaultMaxTravelSeconds: p.MaxTravelSeconds,
			Limits: recommend.LimitsConfig{
				DefaultLimit: p.DefaultLimit,
				MaxLimit:     p.MaxLimit,
			},
		},
		Route: &route.Config{
			LongDistanceMeters: p.LongDistanceMeters,
			Defaults: route.TravelSettings{
				Profile:           geo.SpeedProfile(p.DefaultProfile),
				BufferSeconds:     p.BufferSeconds,
				MinWarningSeconds: p.MinWarningSeconds,
			},
		},
		Optimize: &optimize.Config{
			MinGapMinutes:      o.MinGapMinutes,
			MaxGapMinutes:      o.MaxGapMinutes,
			FillGapMinMinutes:  o.FillGapMinMinutes,
			DiversityThreshold: o.DiversityThreshold,
			ConflictBenefit:    o.ConflictBenefit,
			GapBenefit:         o.GapBenefit,
			DiversityBenefit:   o.DiversityBenefit,
			BaseScore:          o.BaseScore,
			ConflictPenalty:    o.ConflictPenalty,
			CategoryBonus:      o.CategoryBonus,
			CategoryBonusCap:   o.CategoryBonusCap,
			EventBonus:         o.EventBonus,
			EventBonusCap:      o.EventBonusCap,
			GapPenalty:         o.GapPenalty,
			GapPenaltyCap:      o.GapPenaltyCap,
		},
		CalendarName: ics.DefaultCalendarName,
	}
}
