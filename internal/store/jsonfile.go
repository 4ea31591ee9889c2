// RecipeVault - Personal Recipe Catalog and Ingredient Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recipevault/internal/logging"
	"github.com/tomtom215/recipevault/internal/metrics"
)

// Load returns the parsed content of the JSON file at path, or def when the
// file does not exist or cannot be parsed. No error crosses this boundary:
// a missing or corrupt collection degrades to the caller-supplied default,
// returned as-is. Corrupt files are logged and counted; a crash mid-Save can
// produce one, and recovery is simply starting over from def.
func Load[T any](path string, def T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn().Str("path", path).Err(err).Msg("collection unreadable, using default")
			metrics.RecordStoreFallback("read_error")
		}
		return def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logging.Warn().Str("path", path).Err(err).Msg("collection corrupt, using default")
		metrics.RecordStoreFallback("corrupt")
		return def
	}
	return v
}

// Save serializes v as pretty-printed JSON and overwrites the file at path
// in full, creating it if absent. There is no write atomicity beyond what
// the platform provides; Load tolerates the partial file a crash can leave.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
