// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package services provides suture.Service wrappers for Openday components.

Each wrapper translates a component lifecycle (ListenAndServe, cron
Start/Stop) into suture's context-aware Serve pattern and implements
fmt.Stringer so supervisor events name the service.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - NewHTTPServer builds the server from the server configuration

Popularity Snapshot (PopularitySnapshotService):
  - Runs on a robfig/cron schedule (default "@every 5m")
  - Logs the current top-N events and prunes idle trend windows
  - Records openday_popularity_snapshots_total

# Example

	server := services.NewHTTPServer(cfg.Server, router.Setup())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	snapshot, err := services.NewPopularitySnapshotService(p,
	    cfg.Popularity.SnapshotSchedule, cfg.Popularity.SnapshotTopN, logger)
	if err != nil {
	    return err
	}
	tree.AddBackgroundService(snapshot)
*/
package services
