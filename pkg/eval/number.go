package eval

import (
	"strconv"
	"strings"
)

// FormatNumber formats a number in decimal notation, falling back to
// scientific notation when the decimal form gets unwieldy.
//
// Go's 'g' format is not quite ideal for this purpose; it uses scientific
// notation too aggressively, and relatively small numbers like 1234567 are
// printed with scientific notations, something we don't really want. So we
// use a different algorithm for determining when to use scientific notation.
func FormatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	noPoint := !strings.ContainsRune(s, '.')
	if (noPoint && len(s) > 14 && s[len(s)-1] == '0') ||
		strings.HasPrefix(s, "0.0000") {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return s
}
