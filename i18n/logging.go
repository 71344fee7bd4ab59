// Copyright 2025, the KOAssistant contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package i18n.
var Logger = log.With().Str("sys", "i18n").Logger()
