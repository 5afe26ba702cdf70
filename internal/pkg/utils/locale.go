package utils

import (
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale normalizes the Language cookie into a BCP 47 tag ("EN" ->
// "en", "ar-sa" -> "ar-SA"). Values that do not parse are forwarded as-is.
func CanonicalLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return raw
	}
	return tag.String()
}
