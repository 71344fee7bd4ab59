// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		want   string
	}{
		{"pt_BR", "pt"},
		{"zh_CN", "zh"},
		{"en", "en"},
		{"ckb", "ckb"},
		{"", ""},
		{"_US", ""},
	}

	for _, tst := range tests {
		assert.Equal(t, tst.want, baseCode(tst.locale), "baseCode(%q)", tst.locale)
	}
}

func TestResolveLocalePrimaryWins(t *testing.T) {
	t.Parallel()

	settingsPath := writeSettingsFile(t, "language: de\n")
	primary := &stubSettings{values: map[string]string{"language": "fr"}}

	assert.Equal(t, "fr", resolveLocale(primary, settingsPath))
}

func TestResolveLocaleSettingsFileFallback(t *testing.T) {
	t.Parallel()

	settingsPath := writeSettingsFile(t, "language: de\nprovider: anthropic\n")

	assert.Equal(t, "de", resolveLocale(nil, settingsPath))

	// An empty primary value also falls through to the file.
	primary := &stubSettings{values: map[string]string{"language": ""}}
	assert.Equal(t, "de", resolveLocale(primary, settingsPath))
}

func TestResolveLocaleNothingDetermined(t *testing.T) {
	t.Parallel()

	assert.Empty(t, resolveLocale(nil, ""))
	assert.Empty(t, resolveLocale(&stubSettings{}, filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestResolveLocaleCorruptSettingsFileSwallowed(t *testing.T) {
	t.Parallel()

	settingsPath := writeSettingsFile(t, "{language: [unterminated")

	assert.Empty(t, resolveLocale(nil, settingsPath))
}

// stubSettings is an in-memory Settings implementation that counts reads.
type stubSettings struct {
	values map[string]string
	reads  int
}

func (s *stubSettings) ReadSetting(key string) (string, bool) {
	s.reads++

	v, ok := s.values[key]

	return v, ok && v != ""
}

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
