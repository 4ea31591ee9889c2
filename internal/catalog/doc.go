// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package catalog implements the recipe repository and favorites set. Each
// user sees the union of the shared read-only collection and their own
// private collection; favorites hold full snapshot copies keyed by the
// (id, name) identity pair.
package catalog
