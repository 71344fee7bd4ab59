// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestParsePORoundTrip(t *testing.T) {
	t.Parallel()

	m := parsePO(`msgid "Hello"
msgstr "Bonjour"
`)

	if got := m["Hello"]; got != "Bonjour" {
		t.Errorf("Expected Bonjour, got %q", got)
	}

	if len(m) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(m))
	}
}

func TestParsePOHeaderDiscarded(t *testing.T) {
	t.Parallel()

	m := parsePO(`msgid ""
msgstr ""
"Project-Id-Version: koassistant\n"
"Language: fr\n"

msgid "Hello"
msgstr "Bonjour"
`)

	if len(m) != 1 {
		t.Errorf("Expected header to be discarded, got %d entries: %v", len(m), m)
	}

	if _, ok := m[""]; ok {
		t.Error("Header record must not appear in the mapping")
	}
}

func TestParsePOContinuationLines(t *testing.T) {
	t.Parallel()

	// Continuation lines concatenate before escape decoding, so a raw
	// backslash at the end of one piece and an "n" at the start of the
	// next decode as a single newline.
	m := parsePO(`msgid "Hello"
"world"
msgstr "line1\"
"nline2"
`)

	got, ok := m["Helloworld"]
	if !ok {
		t.Fatalf("Expected concatenated msgid Helloworld, got %v", m)
	}

	if got != "line1\nline2" {
		t.Errorf("Expected decoded newline after concatenation, got %q", got)
	}
}

func TestParsePOEscapeDecoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"newline", `a\nb`, "a\nb"},
		{"tab", `a\tb`, "a\tb"},
		{"quote", `a\"b`, `a"b`},
		{"backslash", `a\\b`, `a\b`},
		{"plain", "ab", "ab"},
	}

	for _, tst := range tests {
		m := parsePO("msgid \"key\"\nmsgstr \"" + tst.raw + "\"\n")
		if got := m["key"]; got != tst.want {
			t.Errorf("%s: expected %q, got %q", tst.name, tst.want, got)
		}
	}
}

func TestParsePODuplicateMsgidLastWins(t *testing.T) {
	t.Parallel()

	m := parsePO(`msgid "Hello"
msgstr "first"

msgid "Hello"
msgstr "second"
`)

	if got := m["Hello"]; got != "second" {
		t.Errorf("Expected last occurrence to win, got %q", got)
	}
}

func TestParsePOMalformedRecordsDropped(t *testing.T) {
	t.Parallel()

	m := parsePO(`msgid "orphan id"

msgstr "orphan translation"

msgid "empty translation"
msgstr ""

msgid "ok"
msgstr "bien"
`)

	if len(m) != 1 || m["ok"] != "bien" {
		t.Errorf("Expected only the complete record, got %v", m)
	}
}

func TestParsePOCommentTerminatesRecord(t *testing.T) {
	t.Parallel()

	// A comment between msgid and msgstr splits the record in two halves,
	// both incomplete, so neither is stored.
	m := parsePO(`msgid "Hello"
# translator note
msgstr "Bonjour"
`)

	if len(m) != 0 {
		t.Errorf("Expected no entries, got %v", m)
	}
}

func TestParsePOUnknownLinesIgnored(t *testing.T) {
	t.Parallel()

	m := parsePO(`msgctxt "menu"
msgid "Open"
#, fuzzy
msgstr "Ouvrir"

msgid "Close"
nonsense line
msgstr "Fermer"
`)

	// The fuzzy flag line terminates the first record; the nonsense line
	// inside the second record is skipped without terminating it.
	if _, ok := m["Open"]; ok {
		t.Error("Record split by a flag comment must not be stored")
	}

	if got := m["Close"]; got != "Fermer" {
		t.Errorf("Expected Fermer, got %q", got)
	}
}

func TestParsePOFileMissing(t *testing.T) {
	t.Parallel()

	_, err := parsePOFile(filepath.Join(t.TempDir(), "nope.po"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}
