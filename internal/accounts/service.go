// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package accounts

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/recipevault/internal/apperr"
	"github.com/tomtom215/recipevault/internal/auth"
	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
	"github.com/tomtom215/recipevault/internal/models"
	"github.com/tomtom215/recipevault/internal/store"
)

// MinPasswordLength is the registration password floor.
const MinPasswordLength = 6

// emailPattern accepts local@domain.tld with a 2+ letter TLD. Intentionally
// simpler than the RFC grammar; the address is an account key here, not a
// delivery target.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

// Service implements registration and login over the account collection.
// The mutex serializes the read-modify-write on users.json within this
// process; concurrent writers from other processes still race at the file
// level, last write wins.
type Service struct {
	store *store.Store
	jwt   *auth.JWTManager

	mu sync.Mutex
}

// NewService creates an account service over the given store and token
// manager.
func NewService(st *store.Store, jwt *auth.JWTManager) *Service {
	return &Service{store: st, jwt: jwt}
}

// Register creates an account and returns an auto-login token, so a new user
// lands in an authenticated session without a second round trip.
//
// Returns apperr.ErrValidation for a bad name, email, or password, and
// apperr.ErrConflict when the normalized email is already registered.
func (s *Service) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)

	if err := validateRegistration(name, email, req.Password); err != nil {
		metrics.RecordAuthAttempt("register", false)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.store.Accounts()
	if _, exists := accounts[email]; exists {
		metrics.RecordAuthAttempt("register", false)
		return nil, fmt.Errorf("account %s: %w", email, apperr.ErrConflict)
	}

	salt, err := auth.NewSalt()
	if err != nil {
		metrics.RecordAuthAttempt("register", false)
		return nil, fmt.Errorf("register %s: %w", email, err)
	}
	hash, err := auth.HashPassword(req.Password, salt)
	if err != nil {
		metrics.RecordAuthAttempt("register", false)
		return nil, fmt.Errorf("register %s: %w", email, err)
	}

	accounts[email] = models.Account{
		Name:         name,
		Email:        email,
		Salt:         salt,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.SaveAccounts(accounts); err != nil {
		metrics.RecordAuthAttempt("register", false)
		metrics.RecordStoreSaveError("users")
		return nil, fmt.Errorf("persist account %s: %w", email, err)
	}

	logging.Info().Str("email", email).Msg("account registered")
	metrics.RecordAuthAttempt("register", true)

	return s.issueToken(email, name)
}

// Login verifies credentials and returns a session token.
//
// Returns apperr.ErrNotFound when no account exists for the normalized
// email, and apperr.ErrAuth when the password does not match.
func (s *Service) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	account, ok := s.store.Accounts()[email]
	if !ok {
		metrics.RecordAuthAttempt("login", false)
		return nil, fmt.Errorf("account %s: %w", email, apperr.ErrNotFound)
	}

	if !auth.VerifyPassword(req.Password, account.Salt, account.PasswordHash) {
		logging.Warn().Str("email", email).Msg("login failed")
		metrics.RecordAuthAttempt("login", false)
		return nil, fmt.Errorf("account %s: %w", email, apperr.ErrAuth)
	}

	logging.Info().Str("email", email).Msg("login succeeded")
	metrics.RecordAuthAttempt("login", true)

	return s.issueToken(email, account.Name)
}

// Lookup returns the account for the normalized email.
func (s *Service) Lookup(email string) (models.Account, error) {
	email = NormalizeEmail(email)
	account, ok := s.store.Accounts()[email]
	if !ok {
		return models.Account{}, fmt.Errorf("account %s: %w", email, apperr.ErrNotFound)
	}
	return account, nil
}

// NormalizeEmail lowercases and trims an email address. All account lookups
// and per-user file names key off the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}
	if !ValidEmail(email) {
		return fmt.Errorf("invalid email %q: %w", email, apperr.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", MinPasswordLength, apperr.ErrValidation)
	}
	return nil
}

func (s *Service) issueToken(email, name string) (*models.AuthResponse, error) {
	token, err := s.jwt.GenerateToken(email, name)
	if err != nil {
		return nil, fmt.Errorf("issue token for %s: %w", email, err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwt.Timeout()).UTC(),
		Name:      name,
		Email:     email,
	}, nil
}
