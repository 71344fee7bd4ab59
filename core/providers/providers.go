// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package providers exposes the static provider, model and parameter
// constraint tables bundled with the plugin. The tables are plain data
// lookups; nothing here talks to a provider.
package providers

import (
	"embed"
	"sort"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

//go:embed data/providers.yaml
var dataFS embed.FS

// Constraint is the permitted numeric range for one request parameter.
type Constraint struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Provider describes one AI backend the plugin can talk to.
type Provider struct {
	Models       []string              `yaml:"models"`
	Vision       bool                  `yaml:"vision"`
	Streaming    bool                  `yaml:"streaming"`
	SystemPrompt bool                  `yaml:"systemPrompt"`
	Constraints  map[string]Constraint `yaml:"constraints"`
}

var (
	loadOnce sync.Once
	table    map[string]Provider
)

// load decodes the embedded data table on first use.
func load() map[string]Provider {
	loadOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/providers.yaml")
		if err != nil {
			log.Error().Err(err).Msg("Failed to read embedded provider table")

			table = map[string]Provider{}

			return
		}

		if err := yaml.Unmarshal(raw, &table); err != nil {
			log.Error().Err(err).Msg("Failed to decode embedded provider table")

			table = map[string]Provider{}
		}
	})

	return table
}

// Get returns the table entry for the named provider.
func Get(name string) (Provider, bool) {
	p, ok := load()[name]

	return p, ok
}

// Names returns the known provider names, sorted.
func Names() []string {
	t := load()

	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Models returns the model list for the named provider, or nil when the
// provider is unknown.
func Models(name string) []string {
	p, ok := load()[name]
	if !ok {
		return nil
	}

	return p.Models
}

// ConstraintFor returns the permitted range for one request parameter of
// the named provider.
func ConstraintFor(provider, param string) (Constraint, bool) {
	p, ok := load()[provider]
	if !ok {
		return Constraint{}, false
	}

	c, ok := p.Constraints[param]

	return c, ok
}

// Clamp forces value into the permitted range for the named parameter.
// Unknown providers or parameters leave the value untouched.
func Clamp(provider, param string, value float64) float64 {
	c, ok := ConstraintFor(provider, param)
	if !ok {
		return value
	}

	if value < c.Min {
		return c.Min
	}

	if value > c.Max {
		return c.Max
	}

	return value
}
