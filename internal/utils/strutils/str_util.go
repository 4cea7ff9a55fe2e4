package strutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitleCase returns the string with the first letter of each word capitalized.
// e.g. "device name" → "Device Name"
func ToTitleCase(s string) string {
	caser := cases.Title(language.English)

	return caser.String(strings.ToLower(s))
}

// OrDefault returns s, or def when s is blank.
func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}
