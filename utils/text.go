package utils

import "strings"

// emptyMarker is the dash the site renders for a missing value.
const emptyMarker = "—"

// CleanString trims surrounding whitespace and one pair of enclosing
// parentheses, then maps the site's empty-value marker to "".
func CleanString(s string) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}
	return CheckString(trimmed)
}

// CheckString maps the site's placeholder for a missing value to "".
func CheckString(s string) string {
	if s == emptyMarker {
		return ""
	}
	return s
}
