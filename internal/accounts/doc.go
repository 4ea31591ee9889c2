// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

// Package accounts implements email/password registration and login over the
// users.json collection. Passwords are stored as salted Argon2id digests and
// successful register or login both hand back a JWT session token.
package accounts
