// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
po_apply fills untranslated entries in the plugin's gettext catalogues from
a JSON translations file.

The JSON document maps msgids to translated strings:

	{"Hello": "Bonjour", "Ask the assistant": "Interroger l'assistant"}

For every requested locale, entries whose catalogue record is still
`msgstr ""` are rewritten in place and flagged fuzzy for translator review.
Multi-line msgids are left untouched. The rewritten catalogue is re-parsed
with the gotext runtime as a sanity check.

Usage:

	po_apply -t translations.json [-d plugin-dir] locale [locale...]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"codeberg.org/koassistant/koassistant/core/audit"
	"codeberg.org/koassistant/koassistant/i18n"
)

func main() {
	audit.SetDefaultLogger()

	translationsPath := flag.String("t", "", "JSON translations file (required)")
	baseDir := flag.String("d", ".", "plugin directory holding the locale tree")
	flag.Parse()

	if *translationsPath == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: po_apply -t translations.json [-d plugin-dir] locale [locale...]")
		os.Exit(2)
	}

	translations, err := readTranslations(*translationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read translations")
	}

	var g errgroup.Group

	for _, locale := range flag.Args() {
		locale := locale
		g.Go(func() error {
			return applyLocale(*baseDir, locale, translations)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply translations")
	}
}

// readTranslations loads the msgid -> msgstr pairs from a JSON object.
func readTranslations(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- operator-supplied input file
	if err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%s: top-level value must be a JSON object", path)
	}

	out := make(map[string]string)

	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			out[key.String()] = value.String()
		}

		return true
	})

	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no string translations found", path)
	}

	return out, nil
}

// applyLocale rewrites one locale's catalogue in place.
func applyLocale(baseDir, locale string, translations map[string]string) error {
	path := filepath.Join(baseDir, "locale", locale, "LC_MESSAGES", i18n.Domain+".po")

	raw, err := os.ReadFile(path) // #nosec G304 -- path derived from operator-supplied locale
	if err != nil {
		return fmt.Errorf("catalogue for %s: %w", locale, err)
	}

	rewritten, applied := apply(string(raw), translations)

	if applied == 0 {
		log.Info().Str("locale", locale).Msg("Nothing to apply")

		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write catalogue for %s: %w", locale, err)
	}

	// Re-parse with the gotext runtime to confirm the rewrite kept the
	// catalogue loadable.
	po := gotext.NewPo()
	po.ParseFile(path)

	log.Info().
		Str("locale", locale).
		Int("applied", applied).
		Int("entries", len(po.GetDomain().GetTranslations())).
		Msg("Applied translations")

	return nil
}

// apply fills empty msgstr slots whose single-line msgid has a translation.
// Filled entries are flagged fuzzy so translators can review them.
func apply(content string, translations map[string]string) (string, int) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	applied := 0

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		out = append(out, line)

		payload, ok := strings.CutPrefix(strings.TrimSpace(line), "msgid ")
		if !ok || i+1 >= len(lines) || strings.TrimSpace(lines[i+1]) != `msgstr ""` {
			continue
		}

		msgid, ok := unquoteLine(payload)
		if !ok || msgid == "" {
			continue
		}

		translated, ok := translations[decodePO(msgid)]
		if !ok {
			continue
		}

		out = append(out, "#, fuzzy", fmt.Sprintf("msgstr \"%s\"", encodePO(translated)))
		applied++
		i++ // the original empty msgstr line is consumed
	}

	return strings.Join(out, "\n"), applied
}

// unquoteLine strips one layer of surrounding double quotes.
func unquoteLine(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// encodePO escapes a literal string for embedding in a PO directive.
// Backslashes must be escaped first.
func encodePO(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return strings.ReplaceAll(s, "\t", `\t`)
}

// decodePO is the inverse of encodePO for single-line msgids.
func decodePO(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\"`, `"`)

	return strings.ReplaceAll(s, `\\`, `\`)
}
