// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Languages returns the canonical BCP 47 tags of the locales that have a
// catalogue installed under baseDir.
//
// Locale directory names may use hyphens or underscores, for example
// "pt-BR" or "pt_BR"; both normalise to the same tag. Directories whose
// names do not parse as a language tag, or that lack a catalogue file,
// are skipped. The returned slice is sorted by tag string.
func Languages(baseDir string) []language.Tag {
	entries, err := os.ReadDir(filepath.Join(baseDir, "locale"))
	if err != nil {
		return nil
	}

	var tags []language.Tag

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()

		catalog := filepath.Join(baseDir, "locale", name, "LC_MESSAGES", Domain+".po")
		if _, err := os.Stat(catalog); err != nil {
			continue
		}

		t, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			Logger.Warn().Err(err).Str("dir", name).Msg("Skipping invalid locale directory")

			continue
		}

		tags = append(tags, t)
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })

	return tags
}
