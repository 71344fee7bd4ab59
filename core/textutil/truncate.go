// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package textutil holds small text helpers shared by the plugin.
package textutil

import "unicode/utf8"

// truncationMarker is appended to shortened strings so debug output makes
// the cut visible.
const truncationMarker = "…"

// Truncate shortens s to at most maxRunes runes for debug printing,
// appending a marker when anything was cut. Runes are never split, so the
// result is always valid UTF-8. A non-positive limit yields an empty
// string.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	n := 0

	for i := range s {
		if n == maxRunes {
			return s[:i] + truncationMarker
		}

		n++
	}

	return s
}
