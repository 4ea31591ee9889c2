// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful GET request",
			method:     "GET",
			endpoint:   "/api/v1/recipes",
			statusCode: "200",
			duration:   25 * time.Millisecond,
		},
		{
			name:       "successful POST login",
			method:     "POST",
			endpoint:   "/api/v1/auth/login",
			statusCode: "200",
			duration:   150 * time.Millisecond,
		},
		{
			name:       "unauthorized request",
			method:     "GET",
			endpoint:   "/api/v1/favorites",
			statusCode: "401",
			duration:   5 * time.Millisecond,
		},
		{
			name:       "validation failure",
			method:     "POST",
			endpoint:   "/api/v1/recipes",
			statusCode: "400",
			duration:   10 * time.Millisecond,
		},
		{
			name:       "rate limited request",
			method:     "GET",
			endpoint:   "/api/v1/search",
			statusCode: "429",
			duration:   1 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request - should not panic
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle simulates realistic request lifecycle
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	for i := 0; i < 10; i++ {
		TrackActiveRequest(true)
	}
	for i := 0; i < 10; i++ {
		TrackActiveRequest(false)
	}
}

// TestResultLabels verifies outcome label derivation
func TestResultLabels(t *testing.T) {
	if got := resultLabel(true); got != "success" {
		t.Errorf("resultLabel(true) = %q, want success", got)
	}
	if got := resultLabel(false); got != "failure" {
		t.Errorf("resultLabel(false) = %q, want failure", got)
	}
	if got := resultLabelErr(nil); got != "success" {
		t.Errorf("resultLabelErr(nil) = %q, want success", got)
	}
	if got := resultLabelErr(errors.New("boom")); got != "failure" {
		t.Errorf("resultLabelErr(err) = %q, want failure", got)
	}
}

// TestDomainRecorders tests the catalog, search, auth, and store helpers
func TestDomainRecorders(t *testing.T) {
	RecordStoreFallback("corrupt")
	RecordStoreFallback("read_error")
	RecordStoreSaveError("favorites")

	RecordAuthAttempt("register", true)
	RecordAuthAttempt("login", false)

	RecordSearch("single", 0)
	RecordSearch("multi", 12)
	RecordSearch("advanced", 3)

	RecordRecipeMutation("add", nil)
	RecordRecipeMutation("update", errors.New("not found"))
	RecordRecipeMutation("delete", nil)

	RecordFavoriteOperation("add", nil)
	RecordFavoriteOperation("remove", errors.New("not found"))

	RecordRandomDraw("single")
	RecordRandomDraw("category")
	RecordRandomDraw("multi")

	RecordRateLimitHit("/api/v1/auth/login")
	SetAppInfo("1.0", "go1.25")
	AppUptime.Set(3600)
}

// TestConcurrentMetricRecording tests thread safety of metric recording
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	numGoroutines := 50
	operationsPerGoroutine := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordAPIRequest("GET", "/api/v1/recipes", "200", time.Duration(j)*time.Millisecond)
				TrackActiveRequest(true)
				TrackActiveRequest(false)
				RecordSearch("multi", j)
			}
		}()
	}

	wg.Wait()
}

// TestMetricsRegistration verifies all metrics are properly registered
func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		StoreLoadFallbacks,
		StoreSaveErrors,
		AuthAttempts,
		SearchQueries,
		SearchResultCount,
		RecipeMutations,
		FavoriteOperations,
		RandomDraws,
		AppInfo,
		AppUptime,
	}

	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordSearch("single", 1)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/v1/recipes", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordSearch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordSearch("multi", 10)
	}
}
