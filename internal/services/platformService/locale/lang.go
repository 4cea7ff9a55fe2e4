// Package locale turns POSIX locale strings (LANG=en_US.UTF-8) into the
// language preferences reported by the platform service.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLang is used when the locale is unset or one of the POSIX placeholders.
const DefaultLang = "en_US"

// placeholders are locale values that mean "no locale configured".
var placeholders = map[string]bool{
	"":      true,
	"C":     true,
	"POSIX": true,
}

// Langs splits a locale string into at most two language tags: the base
// language first, then the region-qualified tag. "en_US.UTF-8" gives
// ["en", "en-US"] and "fr" gives ["fr"].
func Langs(value string) []string {
	// Drop the encoding and modifier, e.g. ".UTF-8" or "@euro"
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}

	if placeholders[value] {
		value = DefaultLang
	}

	tag := strings.ReplaceAll(value, "_", "-")

	base, _, found := strings.Cut(tag, "-")
	if !found || base == "" {
		return []string{tag}
	}

	return []string{base, tag}
}

// Tags parses langs into BCP 47 language tags. Entries that are not valid
// tags are skipped.
func Tags(langs []string) []language.Tag {
	tags := make([]language.Tag, 0, len(langs))

	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	return tags
}
