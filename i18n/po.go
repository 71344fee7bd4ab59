// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// parsePOFile reads and parses the catalogue at path.
//
// A missing file surfaces as an error wrapping fs.ErrNotExist, which is
// distinct from a present-but-empty catalogue (an empty mapping and nil
// error). Callers use the distinction to try a fallback catalogue instead
// of caching an empty result for the wrong reason.
func parsePOFile(path string) (map[string]string, error) {
	// The whole file is read up front so no handle outlives the parse.
	raw, err := os.ReadFile(path) // #nosec G304 -- catalogue path is derived from the plugin directory
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}

	return parsePO(string(raw)), nil
}

// parsePO converts the text of one .po catalogue into a msgid -> msgstr
// mapping.
//
// Records with an empty msgid (the header) or an empty msgstr are dropped.
// A later duplicate msgid overwrites an earlier one. Lines that match no
// known directive are skipped so unrecognised PO metadata does not abort
// the parse.
func parsePO(text string) map[string]string {
	entries := make(map[string]string)

	var curID, curStr string

	inID, inStr := false, false

	flush := func() {
		if curID != "" && curStr != "" {
			entries[curID] = curStr
		}

		curID, curStr = "", ""
		inID, inStr = false, false
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			flush()

		case strings.HasPrefix(line, "msgid "):
			v, ok := unquote(line[len("msgid "):])
			if !ok {
				continue
			}

			flush()

			curID = v
			inID = true

		case strings.HasPrefix(line, "msgstr "):
			v, ok := unquote(line[len("msgstr "):])
			if !ok {
				continue
			}

			curStr = v
			inID, inStr = false, true

		case strings.HasPrefix(line, `"`):
			// Continuation line: appended to whichever slot is open.
			v, ok := unquote(line)
			if !ok {
				continue
			}

			if inStr {
				curStr += v
			} else if inID {
				curID += v
			}
		}
	}

	flush()

	return decodeEntries(entries)
}

// unquote strips one layer of surrounding double quotes from a directive
// payload, leaving escape sequences intact.
func unquote(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// decodeEntries decodes escape sequences in every accumulated msgid and
// msgstr. Decoding runs once over the finished result set, after
// continuation lines have been concatenated.
func decodeEntries(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for id, str := range raw {
		out[decodeEscapes(id)] = decodeEscapes(str)
	}

	return out
}

// decodeEscapes turns the PO escape sequences \n, \t, \" and \\ into their
// literal characters. `\\` must decode last: decoding it first would turn
// the three-character sequence `\\n` (a literal backslash followed by n)
// into a newline.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\"`, `"`)

	return strings.ReplaceAll(s, `\\`, `\`)
}
