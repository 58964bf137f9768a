package calc

import "regexp"

// Substitution runs at most this many passes before giving up on reaching a
// fixed point. This bounds cyclic definitions, which are left partially
// expanded and fail later as undefined names.
const maxPasses = 20

// Substitution also stops once the expression grows past this size. A cyclic
// definition with several self references grows the expression geometrically
// per pass, so the pass bound alone does not keep it small.
const maxExprSize = 4096

// Substitute expands variable references in an expression. Each pass walks
// the variables in store order and replaces every whole-word occurrence of a
// name with the parenthesized value; passes repeat until one makes no
// replacement or the expression outgrows the size bound, leaving any
// remaining names embedded. Since a replacement is all-occurrence, the first
// variable of a given name wins and later duplicates find nothing left to
// replace.
func Substitute(expr string, vars []Variable) string {
	patterns := make([]*regexp.Regexp, len(vars))
	for i, v := range vars {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(v.Name) + `\b`)
	}
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for i, v := range vars {
			if patterns[i].MatchString(expr) {
				expr = patterns[i].ReplaceAllLiteralString(expr, "("+v.Value+")")
				changed = true
			}
			if len(expr) > maxExprSize {
				return expr
			}
		}
		if !changed {
			break
		}
	}
	return expr
}
