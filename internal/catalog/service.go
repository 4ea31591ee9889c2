// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/recipevault/internal/apperr"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/store"
)

// DefaultCookTime fills in recipes submitted without one.
const DefaultCookTime = "Unknown"

// Service is the recipe repository: the union of the shared read-only set
// and one private set per user, plus that user's favorites. Every operation
// reloads from disk so requests observe the latest persisted state; the
// mutex serializes in-process read-modify-write cycles. Writers in other
// processes still race at the file level, last write wins.
type Service struct {
	store *store.Store

	mu sync.Mutex
}

// NewService creates a catalog service over the given store.
func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// AllRecipes returns the shared set followed by the user's private set,
// insertion order preserved. The two sets are not deduplicated against each
// other: a shared recipe and a same-named private recipe both appear.
func (s *Service) AllRecipes(safeID string) []models.Recipe {
	shared := s.store.SharedRecipes()
	private := s.store.UserRecipes(safeID)

	union := make([]models.Recipe, 0, len(shared)+len(private))
	union = append(union, shared...)
	union = append(union, private...)
	return union
}

// MyRecipes returns only the user's private set.
func (s *Service) MyRecipes(safeID string) []models.Recipe {
	return s.store.UserRecipes(safeID)
}

// Add validates the submitted fields, assigns the next id over the whole
// union, and appends the recipe to the user's private set.
//
// Returns apperr.ErrValidation for missing fields or an unknown category,
// and apperr.ErrConflict when any recipe in the union already carries the
// same name case-insensitively.
func (s *Service) Add(safeID string, r models.Recipe) (models.Recipe, error) {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateNewRecipe(r); err != nil {
		metrics.RecordRecipeMutation("add", err)
		return models.Recipe{}, err
	}
	if r.CookTime == "" {
		r.CookTime = DefaultCookTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	union := s.AllRecipes(safeID)
	lower := strings.ToLower(r.Name)
	for _, existing := range union {
		if strings.ToLower(existing.Name) == lower {
			err := fmt.Errorf("recipe %q: %w", r.Name, apperr.ErrConflict)
			metrics.RecordRecipeMutation("add", err)
			return models.Recipe{}, err
		}
	}

	r.ID = nextID(union)
	r.CreatedBy = "user"
	r.CreatedDate = time.Now().Format("2006-01-02")

	private := append(s.store.UserRecipes(safeID), r)
	if err := s.store.SaveUserRecipes(safeID, private); err != nil {
		metrics.RecordRecipeMutation("add", err)
		metrics.RecordStoreSaveError("user_recipes")
		return models.Recipe{}, fmt.Errorf("persist recipe %q: %w", r.Name, err)
	}

	logging.Info().Str("user", safeID).Int("id", r.ID).Str("name", r.Name).Msg("recipe added")
	metrics.RecordRecipeMutation("add", nil)
	return r, nil
}

// Update applies a partial update to a recipe in the user's private set.
// Shared recipes are immutable through this interface. A present patch field
// overwrites the stored value; an absent field keeps it. An empty patch is a
// no-op that returns the stored recipe unchanged.
//
// Returns apperr.ErrNotFound when no private recipe has the id and
// apperr.ErrValidation for an unknown category in the patch.
func (s *Service) Update(safeID string, id int, patch models.RecipePatch) (models.Recipe, error) {
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		err := fmt.Errorf("unknown category %q: %w", *patch.Category, apperr.ErrValidation)
		metrics.RecordRecipeMutation("update", err)
		return models.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	private := s.store.UserRecipes(safeID)
	idx := -1
	for i, r := range private {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		err := fmt.Errorf("recipe %d: %w", id, apperr.ErrNotFound)
		metrics.RecordRecipeMutation("update", err)
		return models.Recipe{}, err
	}

	if patch.Empty() {
		metrics.RecordRecipeMutation("update", nil)
		return private[idx], nil
	}

	r := private[idx]
	if patch.Name != nil {
		r.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		r.Category = *patch.Category
	}
	if patch.Ingredients != nil {
		r.Ingredients = *patch.Ingredients
	}
	if patch.CookTime != nil {
		r.CookTime = *patch.CookTime
	}
	if patch.Instructions != nil {
		r.Instructions = *patch.Instructions
	}
	private[idx] = r

	if err := s.store.SaveUserRecipes(safeID, private); err != nil {
		metrics.RecordRecipeMutation("update", err)
		metrics.RecordStoreSaveError("user_recipes")
		return models.Recipe{}, fmt.Errorf("persist recipe %d: %w", id, err)
	}

	logging.Info().Str("user", safeID).Int("id", id).Msg("recipe updated")
	metrics.RecordRecipeMutation("update", nil)
	return r, nil
}

// Delete removes the recipe at the given zero-based position in the user's
// private set. Returns apperr.ErrNotFound when the position is out of
// bounds, and the removed recipe on success.
func (s *Service) Delete(safeID string, position int) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	private := s.store.UserRecipes(safeID)
	if position < 0 || position >= len(private) {
		err := fmt.Errorf("position %d: %w", position, apperr.ErrNotFound)
		metrics.RecordRecipeMutation("delete", err)
		return models.Recipe{}, err
	}

	removed := private[position]
	private = append(private[:position], private[position+1:]...)

	if err := s.store.SaveUserRecipes(safeID, private); err != nil {
		metrics.RecordRecipeMutation("delete", err)
		metrics.RecordStoreSaveError("user_recipes")
		return models.Recipe{}, fmt.Errorf("persist delete at %d: %w", position, err)
	}

	logging.Info().Str("user", safeID).Int("position", position).Str("name", removed.Name).Msg("recipe deleted")
	metrics.RecordRecipeMutation("delete", nil)
	return removed, nil
}

func validateNewRecipe(r models.Recipe) error {
	if r.Name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	if !models.ValidCategory(r.Category) {
		return fmt.Errorf("unknown category %q: %w", r.Category, apperr.ErrValidation)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("at least one ingredient is required: %w", apperr.ErrValidation)
	}
	if strings.TrimSpace(r.Instructions) == "" {
		return fmt.Errorf("instructions are required: %w", apperr.ErrValidation)
	}
	return nil
}

// nextID returns max id in the union plus one, 1 for an empty union.
func nextID(union []models.Recipe) int {
	max := 0
	for _, r := range union {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}
