// Package i18n is a pure key -> string lookup over a small built-in
// catalog. The language is resolved from the Accept-Language header;
// English is the fallback for unknown languages and unknown keys.
package i18n

import "strings"

type Lang string

const (
	EN Lang = "en"
	ES Lang = "es"
	FR Lang = "fr"
)

// FromAcceptLanguage picks the catalog language for a request.
func FromAcceptLanguage(header string) Lang {
	h := strings.ToLower(header)
	switch {
	case strings.HasPrefix(h, "es"):
		return ES
	case strings.HasPrefix(h, "fr"):
		return FR
	default:
		return EN
	}
}

// T resolves key in lang, falling back to English and finally the key
// itself so a missing translation never produces an empty message.
func T(lang Lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[EN][key]; ok {
		return s
	}
	return key
}
