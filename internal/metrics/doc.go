// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package metrics registers the Prometheus collectors for the service and
// provides small recording helpers so callers never touch label plumbing.
// All collectors register on the default registry via promauto and are
// exposed on /metrics.
package metrics
