// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/recipevault/internal/apperr"
	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/store"
	"github.com/tomtom215/recipevault/internal/validation"
)

// respondJSON writes a success envelope. count is the number of items in a
// collection response; pass 0 for single-object payloads and it is omitted
// from the metadata.
func respondJSON(w http.ResponseWriter, status int, data interface{}, count int) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
			Count:     count,
		},
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// respondError writes an error envelope and logs it with the request context.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]interface{}) {
	logger := logging.Ctx(r.Context())
	logger.Warn().
		Int("status", status).
		Str("code", code).
		Str("method", r.Method).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg(sanitizeLogValue(message))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to encode error response")
	}
}

// respondAppError maps a service error onto the HTTP surface via the apperr
// sentinels. Unrecognized errors become an opaque 500 so internal details
// never leak to clients.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger := logging.Ctx(r.Context())
		logger.Error().Err(err).Msg("request failed")
		message = "An internal error occurred"
	}
	respondError(w, r, status, code, message, nil)
}

// statusForError translates the sentinel chain into an HTTP status and error
// code pair.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, apperr.ErrAuth):
		return http.StatusUnauthorized, "AUTHENTICATION_ERROR"
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// decodeJSON decodes the request body into dst, answering 400 INVALID_REQUEST
// on malformed JSON. Returns false when a response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST",
			"Request body must be valid JSON", nil)
		return false
	}
	return true
}

// validateRequest runs struct validation on req, answering 400 with the
// translated field errors on failure. Returns false when a response has
// already been written.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

// requireUser returns the authenticated claims and the per-user file ID. The
// auth middleware guards every route calling this, so a miss means a wiring
// bug; it still answers 401 rather than panicking.
func requireUser(w http.ResponseWriter, r *http.Request) (*auth.Claims, string, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, r, http.StatusUnauthorized, "AUTHENTICATION_ERROR",
			"Authentication required", nil)
		return nil, "", false
	}
	return claims, store.SafeID(claims.Email), true
}

// getIntParam parses a chi URL parameter as an integer.
func getIntParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return value, nil
}

// sanitizeLogValue strips newlines from values echoed into log lines so a
// crafted path or message cannot forge log entries.
func sanitizeLogValue(v string) string {
	v = strings.ReplaceAll(v, "\n", "")
	v = strings.ReplaceAll(v, "\r", "")
	return v
}
