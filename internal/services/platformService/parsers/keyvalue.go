// Package parsers extracts single values from the small text formats the OS
// keeps its identity records in: KEY=VALUE files like /etc/os-release and
// Apple property list fragments.
package parsers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when a record does not contain any of the requested keys.
var ErrParse = errors.New("parsing failed")

const quoteChars = `"'`

// Field returns the value of key from line-oriented KEY=VALUE text.
//
// The first line whose key equals key wins and ends the scan. If key never
// appears, the last value seen for fallback is returned instead. Pass an
// empty fallback to disable it. Quote characters are stripped from both ends
// of the value.
func Field(text, key, fallback string) (string, error) {
	var (
		fallbackValue string
		haveFallback  bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		switch {
		case name == key:
			return Unquote(value), nil
		case fallback != "" && name == fallback:
			fallbackValue = Unquote(value)
			haveFallback = true
		}
	}

	if haveFallback {
		return fallbackValue, nil
	}

	if fallback == "" {
		return "", fmt.Errorf("%w: no %s record", ErrParse, key)
	}

	return "", fmt.Errorf("%w: no %s or %s record", ErrParse, key, fallback)
}

// Unquote strips double and single quotes from both ends of s.
func Unquote(s string) string {
	return strings.Trim(s, quoteChars)
}
