// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package models defines the shared data types of RecipeVault: recipes and
// their (id, name) identity, user accounts, request/response bodies, and the
// common API envelope. It has no dependencies on other internal packages so
// every layer can import it freely.
package models
