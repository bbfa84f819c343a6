// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// Package logging provides the zerolog-based structured logger shared by every
// Openday package.
//
// A single global logger is configured once at startup and read through
// package-level accessors. Components derive child loggers with a "component"
// field so log lines from the recommendation, routing, optimization and
// popularity subsystems can be filtered independently.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("events", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Popularity backend unavailable")
//
// # Configuration
//
// Environment variables (mapped through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Tracing
//
// HTTP middleware stores a request ID and a short correlation ID in the request
// context. Ctx(ctx) returns a logger that carries both fields:
//
//	logging.Ctx(ctx).Info().Msg("Recommendations computed")
//	// {"level":"info","correlation_id":"1a2b3c4d","request_id":"...","message":"..."}
//
// # slog Bridge
//
// The supervisor tree logs through sutureslog, which needs a *slog.Logger.
// NewSlogLogger returns one backed by the global zerolog logger.
//
// # Thread Safety
//
// All accessors are safe for concurrent use. Init and SetLogger take an
// exclusive lock; event constructors take a shared lock.
package logging
