// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package search implements ingredient search over recipe lists: single-term
// filtering, OR search with match-count ranking, and must/can advanced
// search. All matching is case-insensitive substring; functions are pure and
// never mutate their input.
package search
