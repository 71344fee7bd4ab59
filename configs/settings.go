// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config provides read-only access to the plugin's persisted
// settings. The settings file is a flat YAML document of scalar values,
// written by the host application; this package never writes it.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Store is a read-only view over the plugin's persisted settings. It
// satisfies the Settings interface consumed by package i18n.
type Store struct {
	values map[string]string
}

// Load reads the YAML settings file at path into a Store.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- settings path is supplied by the host
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	store := &Store{values: make(map[string]string, len(values))}

	for key, value := range values {
		// Scalars only; nested values are not settings the plugin reads.
		switch value.(type) {
		case map[string]any, []any:
			continue
		case nil:
			continue
		}

		store.values[key] = fmt.Sprint(value)
	}

	return store, nil
}

// LoadOrEmpty is a tolerant Load: a missing or unreadable settings file
// yields an empty Store rather than an error.
func LoadOrEmpty(path string) *Store {
	store, err := Load(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("No readable settings file, using empty settings")

		return &Store{values: map[string]string{}}
	}

	return store
}

// ReadSetting returns the value stored under key, and whether a non-empty
// value is present.
func (s *Store) ReadSetting(key string) (string, bool) {
	v, ok := s.values[key]

	return v, ok && v != ""
}
