// Openday - Open Day Recommendation and Campus Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/openday

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/openday/internal/middleware"
	"github.com/tomtom215/openday/internal/models"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil cfg uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Compress(5, "application/json", "text/calendar"))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Post("/recommendations", router.handler.Recommend)
			r.Post("/recommendations/score", router.handler.Score)

			r.Route("/schedule", func(r chi.Router) {
				r.Post("/batch", router.handler.BatchAdd)
				r.Post("/analyze", router.handler.AnalyzeSchedule)
				r.Post("/travel", router.handler.AnalyzeTravel)
				r.Post("/ics", router.handler.ExportCalendar)
			})

			r.Post("/routes", router.handler.BuildRoute)

			r.Route("/events/{eventID}", func(r chi.Router) {
				r.Post("/view", router.handler.RecordView)
				r.Post("/scheduled", router.handler.RecordScheduled)
				r.Get("/popularity", router.handler.EventPopularity)
			})

			r.Get("/popularity/top", router.handler.TopPopular)
			r.Get("/buildings/nearby", router.handler.NearbyBuildings)
		})
	})

	return r
}
