// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package store is the persistence layer: named collections as pretty-printed
// JSON files on local disk. Load degrades to a caller-supplied default for
// missing or corrupt files, Save overwrites in full, and per-user collections
// are namespaced by a filesystem-safe identifier derived from the email.
package store
