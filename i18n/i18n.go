// Package i18n holds the localized text tables for the two supported
// locales and maps incoming Telegram language codes onto them.
package i18n

import (
	"golang.org/x/text/language"
)

const (
	LangRU = "ru"
	LangEN = "en"
)

// Order matters: index 0 is the fallback.
var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// Match normalizes a Telegram language_code (e.g. "en-US", "ru-RU", "de")
// to a supported locale. Anything we cannot serve falls back to Russian,
// the bot's original audience.
func Match(code string) string {
	if code == "" {
		return LangRU
	}
	_, idx := language.MatchStrings(matcher, code)
	if idx == 1 {
		return LangEN
	}
	return LangRU
}

// T returns the text for key in lang, falling back to Russian when either
// the language or the key is unknown.
func T(lang, key string) string {
	if m, ok := texts[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return texts[LangRU][key]
}
