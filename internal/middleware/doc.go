// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package middleware holds the HTTP middleware the router composes around
// every request: request-ID propagation and Prometheus instrumentation.
// CORS and rate limiting come from the chi ecosystem and are wired in the
// api package.
package middleware
