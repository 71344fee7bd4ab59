// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"io/fs"
	"path/filepath"
)

const (
	// Domain is the gettext catalogue name loaded under each locale.
	Domain = "koassistant"

	// BaseLocale is the locale used when no language setting is found.
	BaseLocale = "en"
)

// Translator answers msgid lookups for the plugin's active locale.
//
// The active locale is resolved lazily on first lookup and remembered until
// Reload is called. Catalogues are parsed once per locale and cached,
// including a negative entry when no catalogue file exists, so repeated
// lookups never re-hit the filesystem.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	settings     Settings
	baseDir      string
	settingsPath string

	// locale is the remembered resolved locale; empty means stale and
	// forces re-resolution on the next lookup.
	locale   string
	catalogs map[string]map[string]string
}

// New returns a Translator reading catalogues from baseDir (the plugin
// directory). settings is the host's settings store and may be nil;
// settingsPath points at the on-disk settings file consulted when the
// store has no language value, and may be empty.
func New(settings Settings, baseDir, settingsPath string) *Translator {
	return &Translator{
		settings:     settings,
		baseDir:      baseDir,
		settingsPath: settingsPath,
		catalogs:     make(map[string]map[string]string),
	}
}

// T returns the translation for msgid in the active locale, or msgid
// unchanged when no translation exists. An empty msgid returns an empty
// string without touching the cache or the filesystem.
func (t *Translator) T(msgid string) string {
	if msgid == "" {
		return ""
	}

	if t.locale == "" {
		t.locale = t.resolve()
	}

	m, ok := t.catalogs[t.locale]
	if !ok {
		m = t.loadCatalog(t.locale)
		t.catalogs[t.locale] = m
	}

	if tr, ok := m[msgid]; ok && tr != "" {
		return tr
	}

	return msgid
}

// Reload forgets the resolved locale and all cached catalogues. The next
// lookup re-resolves the language setting and re-parses its catalogue,
// picking up a runtime configuration change.
func (t *Translator) Reload() {
	t.locale = ""
	t.catalogs = make(map[string]map[string]string)
}

// resolve determines the active locale, falling back to BaseLocale when
// neither settings source yields a value.
func (t *Translator) resolve() string {
	if l := resolveLocale(t.settings, t.settingsPath); l != "" {
		return l
	}

	return BaseLocale
}

// loadCatalog parses the catalogue for locale, trying the exact identifier
// first and its base code second. When neither file exists it returns an
// empty mapping, which the caller caches so the miss is not re-attempted
// until Reload.
func (t *Translator) loadCatalog(locale string) map[string]string {
	m, err := parsePOFile(t.catalogPath(locale))
	if err == nil {
		Logger.Debug().Str("locale", locale).Int("entries", len(m)).Msg("Loaded catalogue")

		return m
	}

	if !errors.Is(err, fs.ErrNotExist) {
		Logger.Warn().Err(err).Str("locale", locale).Msg("Failed to read catalogue")
	}

	if base := baseCode(locale); base != "" && base != locale {
		m, err = parsePOFile(t.catalogPath(base))
		if err == nil {
			Logger.Debug().
				Str("locale", locale).
				Str("base", base).
				Int("entries", len(m)).
				Msg("Loaded base-language catalogue")

			return m
		}

		if !errors.Is(err, fs.ErrNotExist) {
			Logger.Warn().Err(err).Str("locale", base).Msg("Failed to read catalogue")
		}
	}

	Logger.Debug().Str("locale", locale).Msg("No catalogue found, caching empty mapping")

	return map[string]string{}
}

// catalogPath returns the expected catalogue location for locale:
// <baseDir>/locale/<locale>/LC_MESSAGES/koassistant.po.
func (t *Translator) catalogPath(locale string) string {
	return filepath.Join(t.baseDir, "locale", locale, "LC_MESSAGES", Domain+".po")
}
