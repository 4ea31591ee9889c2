// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/recipevault/internal/models"
)

type favoriteRequest struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required"`
}

// ListFavorites returns the user's favorite snapshots.
func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	favorites := h.catalog.Favorites(safeID)
	respondJSON(w, http.StatusOK, favorites, len(favorites))
}

// AddFavorite resolves the (id, name) reference and snapshots the recipe
// into the user's favorites. Already-favorited is a quiet success.
func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req favoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	snapshot, err := h.catalog.AddFavorite(safeID, models.RecipeRef{ID: req.ID, Name: req.Name})
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot, 0)
}

// RemoveFavorite removes every favorite matching the (id, name) reference.
// Removing an absent favorite succeeds.
func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req favoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	if err := h.catalog.RemoveFavorite(safeID, models.RecipeRef{ID: req.ID, Name: req.Name}); err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"removed": true}, 0)
}

// ContainsFavorite reports identity-based membership via ?id=&name=.
func (h *Handlers) ContainsFavorite(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	id, err := strconv.Atoi(query.Get("id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"id must be an integer", nil)
		return
	}
	name := query.Get("name")
	if name == "" {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"name is required", nil)
		return
	}

	favorite := h.catalog.IsFavorite(safeID, models.RecipeRef{ID: id, Name: name})
	respondJSON(w, http.StatusOK, map[string]bool{"favorite": favorite}, 0)
}
