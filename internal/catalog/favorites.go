// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package catalog

import (
	"fmt"

	"github.com/tomtom215/recipevault/internal/apperr"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
)

// Favorites returns the user's favorites, each a full recipe snapshot taken
// at the time it was favorited. A later edit or delete of the source recipe
// does not touch the snapshot.
func (s *Service) Favorites(safeID string) []models.Recipe {
	return s.store.Favorites(safeID)
}

// AddFavorite resolves the (id, name) reference against the union and
// appends a snapshot copy to the user's favorites. Adding a recipe that is
// already favorited is a no-op, not an error.
//
// Returns apperr.ErrNotFound when no recipe in the union has that identity.
func (s *Service) AddFavorite(safeID string, ref models.RecipeRef) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.findByIdentity(safeID, ref)
	if !ok {
		err := fmt.Errorf("recipe (%d, %q): %w", ref.ID, ref.Name, apperr.ErrNotFound)
		metrics.RecordFavoriteOperation("add", err)
		return models.Recipe{}, err
	}

	favorites := s.store.Favorites(safeID)
	for _, f := range favorites {
		if f.SameIdentity(recipe) {
			metrics.RecordFavoriteOperation("add", nil)
			return f, nil
		}
	}

	favorites = append(favorites, recipe)
	if err := s.store.SaveFavorites(safeID, favorites); err != nil {
		metrics.RecordFavoriteOperation("add", err)
		metrics.RecordStoreSaveError("favorites")
		return models.Recipe{}, fmt.Errorf("persist favorite %q: %w", recipe.Name, err)
	}

	logging.Info().Str("user", safeID).Int("id", recipe.ID).Str("name", recipe.Name).Msg("favorite added")
	metrics.RecordFavoriteOperation("add", nil)
	return recipe, nil
}

// RemoveFavorite removes every favorite matching the (id, name) identity.
// Duplicates that slipped past the add-time guard are all removed. Removing
// an absent favorite is a no-op.
func (s *Service) RemoveFavorite(safeID string, ref models.RecipeRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	probe := models.Recipe{ID: ref.ID, Name: ref.Name}
	favorites := s.store.Favorites(safeID)

	kept := favorites[:0]
	for _, f := range favorites {
		if !f.SameIdentity(probe) {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favorites) {
		metrics.RecordFavoriteOperation("remove", nil)
		return nil
	}

	if err := s.store.SaveFavorites(safeID, kept); err != nil {
		metrics.RecordFavoriteOperation("remove", err)
		metrics.RecordStoreSaveError("favorites")
		return fmt.Errorf("persist favorites for %s: %w", safeID, err)
	}

	logging.Info().Str("user", safeID).Int("id", ref.ID).Str("name", ref.Name).Msg("favorite removed")
	metrics.RecordFavoriteOperation("remove", nil)
	return nil
}

// IsFavorite reports identity-based membership in the user's favorites.
func (s *Service) IsFavorite(safeID string, ref models.RecipeRef) bool {
	probe := models.Recipe{ID: ref.ID, Name: ref.Name}
	for _, f := range s.store.Favorites(safeID) {
		if f.SameIdentity(probe) {
			return true
		}
	}
	return false
}

// findByIdentity locates a recipe in the union by (id, name).
func (s *Service) findByIdentity(safeID string, ref models.RecipeRef) (models.Recipe, bool) {
	probe := models.Recipe{ID: ref.ID, Name: ref.Name}
	for _, r := range s.AllRecipes(safeID) {
		if r.SameIdentity(probe) {
			return r, true
		}
	}
	return models.Recipe{}, false
}
