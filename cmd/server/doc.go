// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

/*
Package main is the entry point for the Openday server.

Openday serves personalised event recommendations, schedule conflict
analysis and walking-route planning for a university open day. Visitor
state (schedule, study interests, open slots) arrives with each request;
the server only keeps the event catalogue and anonymous popularity
counters.

# Application Architecture

	RootSupervisor ("openday")
	├── BackgroundSupervisor ("background-layer")
	│   └── Popularity snapshot (robfig/cron)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Catalogue: events, buildings and programs from CATALOG_PATH (YAML or JSON)
 4. Popularity: memory, Redis or BadgerDB counters behind a circuit breaker
 5. Planner: recommendation, route, travel and optimisation engines
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: chi router with CORS, rate limiting and Prometheus metrics

# Configuration

	CONFIG_PATH         config file location (default: ./config.yaml)
	CATALOG_PATH        catalogue file (default: catalog.yaml)
	HTTP_PORT           listen port (default: 8430)
	LOG_LEVEL           trace, debug, info, warn, error (default: info)
	POPULARITY_BACKEND  memory, redis or badger (default: memory)
	REDIS_ADDR          required for the redis backend
	BADGER_PATH         required for the badger backend
	POPULARITY_SNAPSHOT cron schedule for the snapshot job; empty disables it

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, the snapshot job finishes
its current run, and the popularity store is closed last.

# Example

	CATALOG_PATH=./catalog.yaml POPULARITY_BACKEND=redis REDIS_ADDR=localhost:6379 ./openday
*/
package main
