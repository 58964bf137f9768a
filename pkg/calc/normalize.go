package calc

import (
	"strings"
	"unicode"
)

var notation = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"^", "**",
	"√(", "sqrt(",
)

// Normalize rewrites keypad notation into the plain expression syntax: all
// whitespace is stripped, then × ÷ ^ and √( become * / ** and sqrt(.
func Normalize(expr string) string {
	return notation.Replace(strings.Map(dropSpace, expr))
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}
