// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"

	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/models"
)

// Register creates an account and starts a session. The token comes back in
// the body for API clients and in an HTTP-only cookie for browsers.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	resp, err := h.accounts.Register(req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	setSessionCookie(w, resp)
	respondJSON(w, http.StatusCreated, resp, 0)
}

// Login verifies credentials and starts a session.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	resp, err := h.accounts.Login(req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	setSessionCookie(w, resp)
	respondJSON(w, http.StatusOK, resp, 0)
}

func setSessionCookie(w http.ResponseWriter, resp *models.AuthResponse) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
