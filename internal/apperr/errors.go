// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package apperr defines the sentinel errors shared by the catalog, accounts,
// and API layers. Callers match them with errors.Is; layers add context by
// wrapping with fmt.Errorf and %w so the sentinel survives the chain.
package apperr

import "errors"

var (
	// ErrValidation indicates input of the wrong shape or length
	// (empty name, malformed email, short password, unknown category).
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness violation
	// (duplicate recipe name, already-registered email).
	ErrConflict = errors.New("already exists")

	// ErrNotFound indicates a missing account, recipe, or category.
	ErrNotFound = errors.New("not found")

	// ErrAuth indicates bad credentials or a missing/invalid token.
	ErrAuth = errors.New("authentication failed")
)
