package colormap

import (
	"strings"

	"golang.org/x/image/colornames"
)

// IsHexColor reports whether s is "#" followed by exactly 3 or 6
// hexadecimal digits. No normalization is performed.
func IsHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// IsKnownColorName reports whether s is a recognized system color
// name (the SVG 1.1 names, case-insensitively).
func IsKnownColorName(s string) bool {
	_, ok := colornames.Map[strings.ToLower(s)]
	return ok
}
