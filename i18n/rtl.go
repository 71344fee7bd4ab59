// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// rtlBases lists the base codes of right-to-left languages the plugin may
// encounter in catalogue names or language settings.
var rtlBases = map[string]struct{}{
	"ar":  {}, // Arabic
	"ckb": {}, // Central Kurdish
	"dv":  {}, // Divehi
	"fa":  {}, // Persian
	"he":  {}, // Hebrew
	"ps":  {}, // Pashto
	"ug":  {}, // Uyghur
	"ur":  {}, // Urdu
	"yi":  {}, // Yiddish
}

// IsRTL reports whether locale names a right-to-left language. Region
// qualifiers are ignored: "ar_EG" is detected via its base code "ar".
func IsRTL(locale string) bool {
	_, ok := rtlBases[baseCode(locale)]

	return ok
}
