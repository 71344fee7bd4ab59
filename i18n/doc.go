// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n resolves user-facing strings against GNU gettext .po
catalogues installed alongside the plugin.

# Quick start

Use the original English UI text as the msgid; do not invent keys.

Construct one Translator per process and call T wherever text is shown:

	tr := i18n.New(settings, pluginDir, settingsPath)
	tr.T("Ask the assistant")

A missing translation is never an error: T returns its input unchanged
when the active locale has no catalogue, or when the catalogue has no
entry (or an empty entry) for the msgid.

# Locale resolution

The active locale comes from the host's settings store under the
"language" key, then from the on-disk settings file, and defaults to
BaseLocale when neither source yields a value. Region-qualified codes
such as "pt_BR" fall back to their base language ("pt") when no
region-specific catalogue is installed.

Catalogues are parsed once per locale and cached for the life of the
Translator. After the language setting changes, call Reload so the next
lookup re-resolves the locale and re-reads the catalogue.

# Catalogue layout

For a plugin directory D and locale L, the catalogue is expected at

	D/locale/L/LC_MESSAGES/koassistant.po

Plural forms, msgctxt and header metadata are not modelled; the parser
handles plain msgid/msgstr records with continuation lines and the
escape sequences \n, \t, \" and \\.

# Concurrency

A Translator is owned by the host's single UI context and is not safe
for concurrent use.
*/
package i18n
