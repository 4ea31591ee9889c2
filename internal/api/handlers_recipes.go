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

// defaultRandomCount is how many recipes a mode=multi draw returns when the
// client does not say.
const defaultRandomCount = 5

type addRecipeRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Category     string   `json:"category" validate:"required,recipe_category"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	CookTime     string   `json:"cook_time" validate:"max=100"`
	Instructions string   `json:"instructions" validate:"required"`
}

// ListRecipes returns the user's union of shared and private recipes,
// optionally filtered by ?category=.
func (h *Handlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var recipes []models.Recipe
	if category := r.URL.Query().Get("category"); category != "" {
		recipes = h.catalog.ByCategory(safeID, category)
	} else {
		recipes = h.catalog.AllRecipes(safeID)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	respondJSON(w, http.StatusOK, recipes, len(recipes))
}

// MyRecipes returns only the user's private set.
func (h *Handlers) MyRecipes(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	recipes := h.catalog.MyRecipes(safeID)
	respondJSON(w, http.StatusOK, recipes, len(recipes))
}

// AddRecipe appends a recipe to the user's private set.
func (h *Handlers) AddRecipe(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}

	recipe, err := h.catalog.Add(safeID, models.Recipe{
		Name:         req.Name,
		Category:     req.Category,
		Ingredients:  req.Ingredients,
		CookTime:     req.CookTime,
		Instructions: req.Instructions,
	})
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, recipe, 0)
}

// UpdateRecipe applies a partial update to one of the user's private recipes.
func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := getIntParam(r, "id")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	var patch models.RecipePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	recipe, err := h.catalog.Update(safeID, id, patch)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, recipe, 0)
}

// DeleteRecipe removes the private recipe at the given zero-based position
// and returns it.
func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	position, err := getIntParam(r, "position")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	removed, err := h.catalog.Delete(safeID, position)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, removed, 0)
}

// RandomRecipe serves the three draw modes: single (one recipe from the
// union), category (one recipe within ?category=), and multi (?count=
// distinct recipes).
func (h *Handlers) RandomRecipe(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	mode := query.Get("mode")
	if mode == "" {
		mode = "single"
	}

	switch mode {
	case "single":
		recipe, err := h.catalog.Random(safeID)
		if err != nil {
			respondAppError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, recipe, 0)

	case "category":
		category := query.Get("category")
		if category == "" {
			respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
				"category is required for mode=category", nil)
			return
		}
		recipe, err := h.catalog.RandomByCategory(safeID, category)
		if err != nil {
			respondAppError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, recipe, 0)

	case "multi":
		count := defaultRandomCount
		if raw := query.Get("count"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
					"count must be a positive integer", nil)
				return
			}
			count = parsed
		}
		picks := h.catalog.RandomN(safeID, count)
		respondJSON(w, http.StatusOK, picks, len(picks))

	default:
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR",
			"mode must be one of: single, category, multi", nil)
	}
}

// Categories returns the distinct categories present in the user's union.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	categories := h.catalog.Categories(safeID)
	respondJSON(w, http.StatusOK, categories, len(categories))
}

// Stats summarizes the user's view of the catalog.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	_, safeID, ok := requireUser(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.catalog.Stats(safeID), 0)
}
