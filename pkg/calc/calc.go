// Package calc implements the expression engine of varcalc: an ordered
// variable table, textual substitution of variables into expressions,
// notation normalization, and the display pipeline around the evaluator.
package calc

import (
	"varcalc.dev/pkg/eval"
	"varcalc.dev/pkg/parse"
)

// Mode selects how Display treats expressions that are still being typed.
type Mode int

// Possible values for Mode.
const (
	// Live is for previewing as the user types: incomplete input displays as
	// an empty string.
	Live Mode = iota
	// Final is for committed input: everything is evaluated as-is.
	Final
)

// Display runs an expression through the full pipeline and flattens the
// outcome into a display string: the formatted number, "" for live
// incomplete input, or "Error".
func Display(raw string, vars []Variable, mode Mode) string {
	expr := Normalize(Substitute(raw, vars))
	if mode == Live && Incomplete(expr) {
		return ""
	}
	v, err := eval.Eval(parse.Source{Name: exprName, Code: expr})
	if err != nil {
		return "Error"
	}
	return eval.FormatNumber(v)
}

// Eval runs an expression through the same pipeline as Display, but returns
// the value and the underlying error, for callers that render their own
// diagnostics.
func Eval(raw string, vars []Variable) (float64, error) {
	expr := Normalize(Substitute(raw, vars))
	return eval.Eval(parse.Source{Name: exprName, Code: expr})
}

// Diagnostics quote the substituted and normalized text, which is what is
// actually evaluated, rather than the raw input.
const exprName = "[expr]"
