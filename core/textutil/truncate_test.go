// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package textutil

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"under limit", "hello", 10, "hello"},
		{"at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello…"},
		{"multibyte kept whole", "héllo", 2, "hé…"},
		{"cjk", "こんにちは", 3, "こんに…"},
		{"zero limit", "hello", 0, ""},
		{"negative limit", "hello", -1, ""},
		{"empty input", "", 5, ""},
	}

	for _, tst := range tests {
		if got := Truncate(tst.in, tst.max); got != tst.want {
			t.Errorf("%s: Truncate(%q, %d) = %q, want %q", tst.name, tst.in, tst.max, got, tst.want)
		}
	}
}
