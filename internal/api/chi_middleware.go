// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"

	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
)

// ChiMiddleware builds the CORS and rate-limiting middleware from the
// security configuration. The auth endpoints get their own, much stricter
// limiter than the general API so credential stuffing burns out fast without
// throttling normal browsing.
type ChiMiddleware struct {
	cfg *config.SecurityConfig
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(cfg *config.SecurityConfig) *ChiMiddleware {
	return &ChiMiddleware{cfg: cfg}
}

// CORS returns the cross-origin middleware for the configured origins.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   m.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// RateLimit returns the general per-IP API limiter.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limiter(m.cfg.RateLimitRequests, m.cfg.RateLimitWindow, "api")
}

// RateLimitAuth returns the strict per-IP limiter for register/login.
func (m *ChiMiddleware) RateLimitAuth() func(http.Handler) http.Handler {
	return m.limiter(m.cfg.AuthRateLimitRequests, m.cfg.AuthRateLimitWindow, "auth")
}

func (m *ChiMiddleware) limiter(requests int, window time.Duration, endpoint string) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(endpoint)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(models.APIResponse{
				Status: "error",
				Error: &models.APIError{
					Code:    "RATE_LIMIT_EXCEEDED",
					Message: "Too many requests, slow down",
				},
				Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			})
		}),
	)
}
