// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"os"

	"github.com/goccy/go-yaml"
)

// settingLanguage is the settings key holding the configured UI language.
const settingLanguage = "language"

// Settings is the read-only view of the host's settings store.
type Settings interface {
	// ReadSetting returns the value stored under key, and whether a
	// non-empty value is present.
	ReadSetting(key string) (string, bool)
}

// resolveLocale returns the configured locale identifier.
//
// The primary settings store is consulted first, then the on-disk settings
// file at settingsPath. The first non-empty value wins. An empty string
// means no locale was determined; callers apply their own default.
func resolveLocale(primary Settings, settingsPath string) string {
	if primary != nil {
		if v, ok := primary.ReadSetting(settingLanguage); ok && v != "" {
			return v
		}
	}

	if settingsPath != "" {
		if v := readSettingsFile(settingsPath, settingLanguage); v != "" {
			return v
		}
	}

	return ""
}

// readSettingsFile reads one string value from a YAML settings file.
// A missing or unparseable file is treated as "no value", never an error.
func readSettingsFile(path, key string) string {
	raw, err := os.ReadFile(path) // #nosec G304 -- settings path is supplied by the host
	if err != nil {
		return ""
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		Logger.Debug().Err(err).Str("path", path).Msg("Ignoring unreadable settings file")

		return ""
	}

	v, _ := values[key].(string)

	return v
}

// baseCode extracts the longest leading run of lowercase ASCII letters from
// a locale identifier: "pt_BR" yields "pt", "en" yields "en".
func baseCode(locale string) string {
	i := 0
	for i < len(locale) && locale[i] >= 'a' && locale[i] <= 'z' {
		i++
	}

	return locale[:i]
}
