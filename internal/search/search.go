// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package search

import (
	"sort"
	"strings"

	"github.com/tomtom215/recipevault/internal/models"
)

// ParseTerms splits a comma-separated query into trimmed, lowercased terms.
// Blank segments are dropped, so ",, eggs ," yields just ["eggs"].
func ParseTerms(query string) []string {
	var terms []string
	for _, raw := range strings.Split(query, ",") {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Single returns every recipe with at least one ingredient containing term
// as a case-insensitive substring, in repository order. An empty term
// suppresses the search entirely and returns no results.
func Single(recipes []models.Recipe, term string) []models.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	var matched []models.Recipe
	for _, r := range recipes {
		if matchesTerm(r, term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Multi runs an OR search with ranking: the query is comma-split into
// terms, a recipe's score is the count of distinct terms matching any of
// its ingredients, zero-score recipes are excluded, and results are sorted
// by descending score with ties keeping repository order. An empty query
// returns no results.
func Multi(recipes []models.Recipe, query string) []models.Recipe {
	terms := ParseTerms(query)
	if len(terms) == 0 {
		return nil
	}

	var matched []scored
	for _, r := range recipes {
		score := countMatches(r, terms)
		if score > 0 {
			matched = append(matched, scored{recipe: r, score: score})
		}
	}
	return rank(matched)
}

// Advanced runs a must/can search: every must term has to match some
// ingredient (an empty must list passes all recipes), then recipes are
// ranked by how many can terms they match. With a non-empty can list,
// recipes matching none of it are excluded; with an empty can list all
// qualifying recipes are kept in repository order. Both lists empty
// suppresses the search.
func Advanced(recipes []models.Recipe, mustQuery, canQuery string) []models.Recipe {
	must := ParseTerms(mustQuery)
	can := ParseTerms(canQuery)
	if len(must) == 0 && len(can) == 0 {
		return nil
	}

	var matched []scored
	for _, r := range recipes {
		if !matchesAll(r, must) {
			continue
		}
		score := countMatches(r, can)
		if len(can) > 0 && score == 0 {
			continue
		}
		matched = append(matched, scored{recipe: r, score: score})
	}
	return rank(matched)
}

type scored struct {
	recipe models.Recipe
	score  int
}

// rank sorts by descending score; the stable sort keeps repository order on
// ties.
func rank(matched []scored) []models.Recipe {
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	results := make([]models.Recipe, len(matched))
	for i, m := range matched {
		results[i] = m.recipe
	}
	return results
}

// matchesTerm reports whether any ingredient contains term as a
// case-insensitive substring. "egg" matching "eggplant" is accepted
// behavior.
func matchesTerm(r models.Recipe, term string) bool {
	for _, ingredient := range r.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), term) {
			return true
		}
	}
	return false
}

// countMatches counts the distinct terms that match at least one
// ingredient.
func countMatches(r models.Recipe, terms []string) int {
	count := 0
	for _, term := range terms {
		if matchesTerm(r, term) {
			count++
		}
	}
	return count
}

// matchesAll reports whether every term matches; an empty list passes.
func matchesAll(r models.Recipe, terms []string) bool {
	for _, term := range terms {
		if !matchesTerm(r, term) {
			return false
		}
	}
	return true
}
