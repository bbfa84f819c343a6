// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

// Package config loads Openday configuration with Koanf v2.
//
// Sources, lowest to highest priority:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file: CONFIG_PATH, else config.yaml / config.yml / /etc/openday/config.yaml
//  3. Environment variables listed in envMappings
//
// Example config.yaml:
//
//	server:
//	  port: 8430
//	planner:
//	  default_profile: normal
//	  buffer_seconds: 300
//	popularity:
//	  backend: redis
//	  redis:
//	    addr: redis:6379
//	catalog:
//	  path: /data/catalog.yaml
//
// The walking-distance inflation factor, suggestion benefit scores and every
// scoring weight are exposed here as tunables; the defaults reproduce the
// documented engine behaviour.
package config
