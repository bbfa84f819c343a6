// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package supervisor provides process supervision for Openday using suture v4.

The supervisor tree manages the lifecycle of every long-running service with
Erlang/OTP-style restarts and graceful shutdown.

# Overview

	RootSupervisor ("openday")
	├── BackgroundSupervisor ("background-layer")
	│   └── PopularitySnapshotService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash in the snapshot job restarts that job only; the API keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(),
	    supervisor.TreeConfigFromConfig(cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddBackgroundService(snapshot)

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig controls restart behavior. Zero values take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

The values are read from the supervisor section of the configuration
(SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_BACKOFF,
SUPERVISOR_SHUTDOWN_TIMEOUT).

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning nil stops the service for good. Returning an error restarts it
with backoff. On context cancellation a service must return promptly.

# Logging

Supervisor events (start, stop, failure, backoff) are written through
sutureslog into the zerolog-backed slog handler from internal/logging, so
they share format and level with the rest of the application.

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    log.Printf("Service didn't stop: %v", svc)
	}
*/
package supervisor
