// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package store

import (
	"path/filepath"
	"regexp"
)

// nonAlphanumeric matches every run of characters outside [a-zA-Z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SafeID derives a filesystem-safe identifier from a normalized email by
// replacing every run of non-alphanumeric characters with a single
// underscore. It namespaces that user's recipes and favorites files, so the
// mapping must stay deterministic across releases.
//
//	SafeID("alice@example.com") == "alice_example_com"
func SafeID(email string) string {
	return nonAlphanumeric.ReplaceAllString(email, "_")
}

// Paths resolves collection file locations under one data directory.
type Paths struct {
	dir string
}

// NewPaths returns a Paths rooted at dir.
func NewPaths(dir string) Paths {
	return Paths{dir: dir}
}

// SharedRecipes is the externally generated, read-only recipe collection.
func (p Paths) SharedRecipes() string {
	return filepath.Join(p.dir, "recipes.json")
}

// Users is the account collection, an object keyed by normalized email.
func (p Paths) Users() string {
	return filepath.Join(p.dir, "users.json")
}

// UserRecipes is the private recipe collection of the user with the given
// safe identifier.
func (p Paths) UserRecipes(safeID string) string {
	return filepath.Join(p.dir, "user_recipes_"+safeID+".json")
}

// Favorites is the favorites collection of the user with the given safe
// identifier.
func (p Paths) Favorites(safeID string) string {
	return filepath.Join(p.dir, "favorites_"+safeID+".json")
}
