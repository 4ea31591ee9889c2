// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package api is the HTTP layer: the chi router, the per-route middleware
// (CORS, rate limiting, authentication, Prometheus instrumentation), and the
// handlers that translate between the JSON surface and the accounts/catalog
// services. All responses use the models.APIResponse envelope.
package api
