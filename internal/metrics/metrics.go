// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the recipe service:
// - API endpoint latency and throughput
// - Store load fallbacks and save errors
// - Auth outcomes
// - Search and catalog activity

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Store Metrics
	StoreLoadFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_load_fallbacks_total",
			Help: "Total number of collection loads that fell back to the default value",
		},
		[]string{"reason"}, // "read_error", "corrupt"
	)

	StoreSaveErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_save_errors_total",
			Help: "Total number of failed collection writes",
		},
		[]string{"collection"}, // "users", "user_recipes", "favorites"
	)

	// Auth Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"operation", "result"}, // operation: "register", "login"; result: "success", "failure"
	)

	// Search Metrics
	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of search queries",
		},
		[]string{"mode"}, // "single", "multi", "advanced"
	)

	SearchResultCount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_result_count",
			Help:    "Number of recipes returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"mode"},
	)

	// Catalog Metrics
	RecipeMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_mutations_total",
			Help: "Total number of recipe catalog mutations",
		},
		[]string{"operation", "result"}, // operation: "add", "update", "delete"
	)

	FavoriteOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorite_operations_total",
			Help: "Total number of favorites mutations",
		},
		[]string{"operation", "result"}, // operation: "add", "remove"
	)

	RandomDraws = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "random_draws_total",
			Help: "Total number of random recipe draws",
		},
		[]string{"mode"}, // "single", "category", "multi"
	)

	// Application Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a 429 rejection on the given endpoint.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordStoreFallback records a collection load that degraded to its default.
func RecordStoreFallback(reason string) {
	StoreLoadFallbacks.WithLabelValues(reason).Inc()
}

// RecordStoreSaveError records a failed collection write.
func RecordStoreSaveError(collection string) {
	StoreSaveErrors.WithLabelValues(collection).Inc()
}

// RecordAuthAttempt records the outcome of a register or login attempt.
func RecordAuthAttempt(operation string, success bool) {
	AuthAttempts.WithLabelValues(operation, resultLabel(success)).Inc()
}

// RecordSearch records one search query and its result size.
func RecordSearch(mode string, results int) {
	SearchQueries.WithLabelValues(mode).Inc()
	SearchResultCount.WithLabelValues(mode).Observe(float64(results))
}

// RecordRecipeMutation records the outcome of a catalog mutation.
func RecordRecipeMutation(operation string, err error) {
	RecipeMutations.WithLabelValues(operation, resultLabelErr(err)).Inc()
}

// RecordFavoriteOperation records the outcome of a favorites mutation.
func RecordFavoriteOperation(operation string, err error) {
	FavoriteOperations.WithLabelValues(operation, resultLabelErr(err)).Inc()
}

// RecordRandomDraw records one random recipe draw.
func RecordRandomDraw(mode string) {
	RandomDraws.WithLabelValues(mode).Inc()
}

// SetAppInfo publishes the build identity as a constant gauge.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func resultLabelErr(err error) string {
	return resultLabel(err == nil)
}
