// Package hexcolour validates, normalises and formats hex colour strings.
//
// The canonical form used throughout tincture is six uppercase hex digits
// without a leading '#', e.g. "1A2B3C". Invalid input is reported through a
// boolean rather than an error so callers can decide how to surface it.
package hexcolour

import (
	"fmt"
	"regexp"
	"strings"
)

// hexPattern matches an optional '#' followed by exactly 3 or 6 hex digits.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsValid reports whether s is a 3 or 6 digit hex colour, with or without '#'.
func IsValid(s string) bool {
	return hexPattern.MatchString(s)
}

// Normalize returns the canonical six digit uppercase form of s.
// Shorthand input is expanded by doubling each digit ("abc" -> "AABBCC").
// The boolean is false when s is not a valid hex colour.
func Normalize(s string) (string, bool) {
	if !IsValid(s) {
		return "", false
	}

	hex := strings.TrimPrefix(s, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	return strings.ToUpper(hex), true
}

// MustNormalize is like Normalize but panics on invalid input.
// Intended for package-level constants and tests.
func MustNormalize(s string) string {
	hex, ok := Normalize(s)
	if !ok {
		panic(fmt.Sprintf("hexcolour: invalid hex colour %q", s))
	}
	return hex
}

// FormatForDisplay returns the hex prefixed with '#' in uppercase ("#1A2B3C").
func FormatForDisplay(hex string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#"))
}
