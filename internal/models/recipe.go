// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package models

// Category values form the fixed recipe taxonomy. The on-disk format and the
// API both use the snake_case spelling.
const (
	CategoryBreakfast  = "breakfast"
	CategoryFastFood   = "fast_food"
	CategoryHealthy    = "healthy"
	CategoryVegetarian = "vegetarian"
)

// Categories lists every valid recipe category in display order.
var Categories = []string{
	CategoryBreakfast,
	CategoryFastFood,
	CategoryHealthy,
	CategoryVegetarian,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Recipe is the unit of the catalog. The shared set and every user's private
// set store the same shape, and favorites store full snapshot copies of it.
//
// Fields:
//   - ID: positive integer, unique within the union of shared + private sets
//   - Name: display name, unique case-insensitively within the union
//   - Category: one of the Categories values
//   - Ingredients: ordered ingredient list, matched by the search engine
//   - CookTime: free-form duration string (e.g. "15 minutes")
//   - Instructions: free-form cooking instructions
//   - CreatedBy: "user" for user-submitted recipes; the shared set carries
//     whatever its external generator wrote
//   - CreatedDate: YYYY-MM-DD creation date
type Recipe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Ingredients  []string `json:"ingredients"`
	CookTime     string   `json:"cook_time"`
	Instructions string   `json:"instructions"`
	CreatedBy    string   `json:"created_by,omitempty"`
	CreatedDate  string   `json:"created_date,omitempty"`
}

// SameIdentity reports whether two recipes are "the same" for favorites and
// dedup purposes. Identity is the (id, name) pair: a rename produces a new
// identity, which silently detaches any favorite pointing at the old one.
// Known quirk, kept deliberately; see DESIGN.md before changing this.
func (r Recipe) SameIdentity(other Recipe) bool {
	return r.ID == other.ID && r.Name == other.Name
}

// RecipeRef is the minimal (id, name) identity reference clients send when
// favoriting or unfavoriting a recipe.
type RecipeRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RecipePatch is an explicit partial update for a private recipe. A nil field
// is absent and keeps the stored value; a non-nil field overwrites it. This
// replaces the original's overwrite-only-if-non-empty merge with presence the
// caller states outright.
type RecipePatch struct {
	Name         *string   `json:"name,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Ingredients  *[]string `json:"ingredients,omitempty"`
	CookTime     *string   `json:"cook_time,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p RecipePatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Ingredients == nil &&
		p.CookTime == nil && p.Instructions == nil
}

// Stats summarizes one user's view of the catalog.
type Stats struct {
	TotalRecipes int            `json:"total_recipes"`
	MyRecipes    int            `json:"my_recipes"`
	Favorites    int            `json:"favorites"`
	ByCategory   map[string]int `json:"by_category"`
}
