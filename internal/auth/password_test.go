// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package auth

import (
	"encoding/hex"
	"testing"
)

func TestNewSaltLengthAndUniqueness(t *testing.T) {
	t.Parallel()

	s1, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	s2, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}

	raw, err := hex.DecodeString(s1)
	if err != nil {
		t.Fatalf("salt is not hex: %v", err)
	}
	if len(raw) != saltLen {
		t.Errorf("expected %d byte salt, got %d", saltLen, len(raw))
	}
	if s1 == s2 {
		t.Error("expected distinct salts")
	}
}

func TestHashPasswordDeterministicPerSalt(t *testing.T) {
	t.Parallel()

	salt, _ := NewSalt()
	h1, err := HashPassword("hunter2!", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, _ := HashPassword("hunter2!", salt)
	if h1 != h2 {
		t.Error("same password and salt should hash identically")
	}

	other, _ := NewSalt()
	h3, _ := HashPassword("hunter2!", other)
	if h1 == h3 {
		t.Error("different salts should produce different digests")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	salt, _ := NewSalt()
	hash, err := HashPassword("correct horse", salt)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword("correct horse", salt, hash) {
		t.Error("expected matching password to verify")
	}
	if VerifyPassword("wrong horse", salt, hash) {
		t.Error("expected wrong password to fail")
	}
	if VerifyPassword("correct horse", "zz-not-hex", hash) {
		t.Error("expected bad salt to fail verification")
	}
}
