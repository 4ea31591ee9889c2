// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package store

import (
	"fmt"
	"os"

	"github.com/tomtom215/recipevault/internal/models"
)

// Store reads and writes the flat JSON collections under one data
// directory. Every accessor re-reads its file so each request observes the
// latest persisted state, and every mutation is a full-file overwrite
// performed by the owning service; Store itself holds no cache and no lock.
type Store struct {
	paths Paths
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Store{paths: NewPaths(dir)}, nil
}

// SharedRecipes returns the read-only shared recipe set. This subsystem
// never writes recipes.json; the collection is generated externally.
func (s *Store) SharedRecipes() []models.Recipe {
	return Load(s.paths.SharedRecipes(), []models.Recipe{})
}

// UserRecipes returns the private recipe set of the given user.
func (s *Store) UserRecipes(safeID string) []models.Recipe {
	return Load(s.paths.UserRecipes(safeID), []models.Recipe{})
}

// SaveUserRecipes overwrites the private recipe set of the given user.
func (s *Store) SaveUserRecipes(safeID string, recipes []models.Recipe) error {
	return Save(s.paths.UserRecipes(safeID), recipes)
}

// Favorites returns the favorites set of the given user.
func (s *Store) Favorites(safeID string) []models.Recipe {
	return Load(s.paths.Favorites(safeID), []models.Recipe{})
}

// SaveFavorites overwrites the favorites set of the given user.
func (s *Store) SaveFavorites(safeID string, recipes []models.Recipe) error {
	return Save(s.paths.Favorites(safeID), recipes)
}

// Accounts returns the account collection keyed by normalized email.
func (s *Store) Accounts() map[string]models.Account {
	return Load(s.paths.Users(), map[string]models.Account{})
}

// SaveAccounts overwrites the account collection.
func (s *Store) SaveAccounts(accounts map[string]models.Account) error {
	return Save(s.paths.Users(), accounts)
}
