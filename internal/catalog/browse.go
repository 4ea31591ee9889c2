// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package catalog

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/tomtom215/recipevault/internal/apperr"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
)

// Categories returns the distinct categories present in the user's union,
// sorted. An empty catalog yields an empty list.
func (s *Service) Categories(safeID string) []string {
	seen := make(map[string]bool)
	for _, r := range s.AllRecipes(safeID) {
		if r.Category != "" {
			seen[r.Category] = true
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// ByCategory returns the union filtered to one category, repository order.
func (s *Service) ByCategory(safeID, category string) []models.Recipe {
	var matched []models.Recipe
	for _, r := range s.AllRecipes(safeID) {
		if r.Category == category {
			matched = append(matched, r)
		}
	}
	return matched
}

// Random returns one uniformly random recipe from the union.
// Returns apperr.ErrNotFound when the union is empty.
func (s *Service) Random(safeID string) (models.Recipe, error) {
	union := s.AllRecipes(safeID)
	if len(union) == 0 {
		return models.Recipe{}, fmt.Errorf("no recipes: %w", apperr.ErrNotFound)
	}
	metrics.RecordRandomDraw("single")
	return union[rand.IntN(len(union))], nil
}

// RandomByCategory returns one uniformly random recipe within a category.
// Returns apperr.ErrNotFound when the category has no recipes.
func (s *Service) RandomByCategory(safeID, category string) (models.Recipe, error) {
	matched := s.ByCategory(safeID, category)
	if len(matched) == 0 {
		return models.Recipe{}, fmt.Errorf("category %q has no recipes: %w", category, apperr.ErrNotFound)
	}
	metrics.RecordRandomDraw("category")
	return matched[rand.IntN(len(matched))], nil
}

// RandomN returns n distinct random recipes from the union, in random
// order. When n meets or exceeds the union size the whole union is
// returned (still shuffled). n below one yields an empty result.
func (s *Service) RandomN(safeID string, n int) []models.Recipe {
	if n < 1 {
		return []models.Recipe{}
	}

	union := s.AllRecipes(safeID)
	if n > len(union) {
		n = len(union)
	}

	picks := make([]models.Recipe, 0, n)
	for _, i := range rand.Perm(len(union))[:n] {
		picks = append(picks, union[i])
	}
	metrics.RecordRandomDraw("multi")
	return picks
}

// Stats summarizes the user's view of the catalog: the union size, the
// private set size, the favorites count, and per-category counts over the
// union.
func (s *Service) Stats(safeID string) models.Stats {
	union := s.AllRecipes(safeID)

	byCategory := make(map[string]int)
	for _, r := range union {
		if r.Category != "" {
			byCategory[r.Category]++
		}
	}

	return models.Stats{
		TotalRecipes: len(union),
		MyRecipes:    len(s.store.UserRecipes(safeID)),
		Favorites:    len(s.store.Favorites(safeID)),
		ByCategory:   byCategory,
	}
}
