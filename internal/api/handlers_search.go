// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"

	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/search"
)

// Search runs an ingredient search over the user's union.
//
//	mode=single   ?q= one term, substring match, repository order
//	mode=multi    ?q= comma-separated terms, ranked by distinct matches
//	mode=advanced ?must= and ?can= comma-separated lists, filtered then ranked
//
// An empty query (all relevant parameters blank) returns an empty result
// rather than the whole catalog.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	mode := query.Get("mode")
	if mode == "" {
		mode = "single"
	}

	union := h.catalog.AllRecipes(safeID)

	var results []models.Recipe
	switch mode {
	case "single":
		results = search.Single(union, query.Get("q"))
	case "multi":
		results = search.Multi(union, query.Get("q"))
	case "advanced":
		results = search.Advanced(union, query.Get("must"), query.Get("can"))
	default:
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"mode must be one of: single, multi, advanced", nil)
		return
	}

	metrics.RecordSearch(mode, len(results))
	if results == nil {
		results = []models.Recipe{}
	}
	respondJSON(w, http.StatusOK, results, len(results))
}
