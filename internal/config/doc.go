// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package config loads and validates application configuration from
// layered sources (defaults, optional YAML file, environment variables)
// using Koanf v2.
package config
