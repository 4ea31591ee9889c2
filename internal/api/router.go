// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/middleware"
)

// Router assembles the HTTP surface from the handlers and the middleware
// factories.
type Router struct {
	handlers      *Handlers
	chiMiddleware *ChiMiddleware
	authMW        *auth.Middleware
}

// NewRouter creates a router.
func NewRouter(handlers *Handlers, chiMW *ChiMiddleware, authMW *auth.Middleware) *Router {
	return &Router{
		handlers:      handlers,
		chiMiddleware: chiMW,
		authMW:        authMW,
	}
}

// SetupChi builds the chi mux. Health and metrics are open; the auth
// endpoints sit behind the strict limiter; everything else requires a valid
// session token.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.Get("/api/v1/health", router.handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Post("/register", router.handlers.Register)
		r.Post("/login", router.handlers.Login)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(router.authMW.Authenticate)

		r.Get("/recipes", router.handlers.ListRecipes)
		r.Post("/recipes", router.handlers.AddRecipe)
		r.Get("/recipes/random", router.handlers.RandomRecipe)
		r.Patch("/recipes/{id}", router.handlers.UpdateRecipe)

		r.Get("/my/recipes", router.handlers.MyRecipes)
		r.Delete("/my/recipes/{position}", router.handlers.DeleteRecipe)

		r.Get("/categories", router.handlers.Categories)
		r.Get("/stats", router.handlers.Stats)

		r.Get("/favorites", router.handlers.ListFavorites)
		r.Post("/favorites", router.handlers.AddFavorite)
		r.Delete("/favorites", router.handlers.RemoveFavorite)
		r.Get("/favorites/contains", router.handlers.ContainsFavorite)

		r.Get("/search", router.handlers.Search)
	})

	return r
}
