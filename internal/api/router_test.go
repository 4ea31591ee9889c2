// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recipevault/internal/accounts"
	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/catalog"
	"github.com/tomtom215/recipevault/internal/config"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/store"
)

var sharedFixture = []models.Recipe{
	{
		ID:           1,
		Name:         "Omelette",
		Category:     models.CategoryBreakfast,
		Ingredients:  []string{"Eggs", "Butter", "Salt"},
		CookTime:     "10 minutes",
		Instructions: "Whisk and fry.",
	},
	{
		ID:           2,
		Name:         "Caesar Salad",
		Category:     models.CategoryHealthy,
		Ingredients:  []string{"Romaine", "Croutons", "Parmesan"},
		CookTime:     "15 minutes",
		Instructions: "Toss everything.",
	},
}

func testSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		JWTSecret:             strings.Repeat("s", 32),
		SessionTimeout:        time.Hour,
		RateLimitRequests:     1000,
		RateLimitWindow:       time.Minute,
		AuthRateLimitRequests: 1000,
		AuthRateLimitWindow:   time.Minute,
		CORSOrigins:           []string{"*"},
	}
}

// newTestRouter assembles the full middleware and handler stack over a
// temporary store seeded with the shared fixture.
func newTestRouter(t *testing.T, secCfg *config.SecurityConfig) http.Handler {
	t.Helper()

	dir := t.TempDir()
	if err := store.Save(store.NewPaths(dir).SharedRecipes(), sharedFixture); err != nil {
		t.Fatalf("seed shared recipes: %v", err)
	}

	st, err := store.New(dir)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	jwtMgr, err := auth.NewJWTManager(secCfg)
	if err != nil {
		t.Fatalf("auth.NewJWTManager: %v", err)
	}

	handlers := NewHandlers(accounts.NewService(st, jwtMgr), catalog.NewService(st), "test")
	return NewRouter(handlers, NewChiMiddleware(secCfg), auth.NewMiddleware(jwtMgr)).SetupChi()
}

// doJSON performs one request against the router, attaching the bearer token
// and a JSON body when given.
func doJSON(t *testing.T, h http.Handler, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) envelope {
	t.Helper()

	env := decodeEnvelope(t, rec)
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data %q)", err, string(env.Data))
	}
	return env
}

func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("expected status %d, got %d (body %q)", status, rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil {
		t.Fatal("expected error payload")
	}
	if env.Error.Code != code {
		t.Errorf("expected code %s, got %s", code, env.Error.Code)
	}
}

// register creates an account and returns its session token.
func register(t *testing.T, h http.Handler, name, email, password string) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name: name, Email: email, Password: password,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (body %q)", rec.Code, rec.Body.String())
	}

	var resp models.AuthResponse
	decodeData(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("register: expected a token")
	}
	return resp.Token
}

func TestHealthOpen(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	rec := doJSON(t, h, http.MethodGet, "/api/v1/health", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var status models.HealthStatus
	decodeData(t, rec, &status)
	if status.Status != "ok" {
		t.Errorf("expected ok, got %q", status.Status)
	}
	if status.Version != "test" {
		t.Errorf("expected version test, got %q", status.Version)
	}
}

func TestMetricsOpen(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	rec := doJSON(t, h, http.MethodGet, "/metrics", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Error("expected Prometheus exposition format")
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())

	for _, target := range []string{
		"/api/v1/recipes",
		"/api/v1/my/recipes",
		"/api/v1/favorites",
		"/api/v1/search?q=eggs",
		"/api/v1/stats",
	} {
		rec := doJSON(t, h, http.MethodGet, target, "", nil)
		expectErrorCode(t, rec, http.StatusUnauthorized, "AUTHENTICATION_ERROR")
	}
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %q)", rec.Code, rec.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.TokenCookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("expected session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("expected HTTP-only cookie")
	}

	// The cookie alone must authenticate a protected route.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	req.AddCookie(sessionCookie)
	cookieRec := httptest.NewRecorder()
	h.ServeHTTP(cookieRec, req)
	if cookieRec.Code != http.StatusOK {
		t.Errorf("expected cookie auth to pass, got %d", cookieRec.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	register(t, h, "Alice", "alice@example.com", "secret1")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name: "Imposter", Email: "ALICE@Example.com", Password: "secret2",
	})
	expectErrorCode(t, rec, http.StatusConflict, "CONFLICT")
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "not-an-email", Password: "secret1",
	})
	expectErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")

	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "tiny",
	})
	expectErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}

func TestMalformedBodyRejected(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	expectErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testSecurityConfig())
	register(t, h, "Alice", "alice@example.com", "secret1")

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "secret1",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %q)", rec.Code, rec.Body.String())
	}
	var resp models.AuthResponse
	decodeData(t, rec, &resp)
	if resp.Name != "Alice" {
		t.Errorf("expected name Alice, got %q", resp.Name)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email: "alice@example.com", Password: "wrongpass",
	})
	expectErrorCode(t, rec, http.StatusUnauthorized, "AUTHENTICATION_ERROR")

	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email: "nobody@example.com", Password: "secret1",
	})
	expectErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestAuthRateLimit(t *testing.T) {
	t.Parallel()

	secCfg := testSecurityConfig()
	secCfg.AuthRateLimitRequests = 2
	secCfg.AuthRateLimitWindow = time.Minute
	h := newTestRouter(t, secCfg)

	body := models.LoginRequest{Email: "alice@example.com", Password: "secret1"}
	for i := 0; i < 2; i++ {
		rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", body)
		if rec.Code == http.StatusTooManyRequests {
			t.Fatalf("request %d limited too early", i+1)
		}
	}

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", body)
	expectErrorCode(t, rec, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED")
}
