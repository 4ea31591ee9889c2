// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/recipevault/internal/accounts"
	"github.com/tomtom215/recipevault/internal/catalog"
	"github.com/tomtom215/recipevault/internal/models"
)

// Handlers bundles the services the HTTP surface exposes.
type Handlers struct {
	accounts *accounts.Service
	catalog  *catalog.Service
	version  string
	started  time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(accountsSvc *accounts.Service, catalogSvc *catalog.Service, version string) *Handlers {
	return &Handlers{
		accounts: accountsSvc,
		catalog:  catalogSvc,
		version:  version,
		started:  time.Now(),
	}
}

// Health answers the unauthenticated liveness probe.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.started).Seconds(),
	}, 0)
}
