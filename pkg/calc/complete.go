package calc

// Incomplete reports whether a normalized expression looks like a prefix of
// a longer expression rather than a malformed one: it is empty, ends in a
// binary operator, or has unclosed parentheses (which also covers ending
// right after "sqrt("). Live mode displays such expressions as "" instead of
// "Error".
func Incomplete(expr string) bool {
	if expr == "" {
		return true
	}
	switch expr[len(expr)-1] {
	case '+', '-', '*', '/':
		return true
	}
	depth := 0
	for _, r := range expr {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}
