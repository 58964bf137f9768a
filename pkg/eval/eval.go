// Package eval implements evaluation of parsed arithmetic expressions.
//
// Evaluation is purely numerical: the only constructs it executes are the
// arithmetic operators and the functions of the expression grammar. Variable
// references are not resolved here; they must be substituted into the
// expression text beforehand, and any that remain evaluate to an "undefined
// variable" exception.
package eval

import (
	"math"

	"varcalc.dev/pkg/diag"
	"varcalc.dev/pkg/eval/errs"
	"varcalc.dev/pkg/parse"
)

// Eval parses the given source and evaluates it. The returned error is either
// a parse error or an Exception.
func Eval(src parse.Source) (float64, error) {
	tree, err := parse.Parse(src)
	if err != nil {
		return 0, err
	}
	return EvalTree(tree)
}

// EvalTree evaluates a parsed tree. The returned error, if not nil, is an
// Exception.
func EvalTree(tree parse.Tree) (float64, error) {
	ev := &evaler{tree.Source}
	return ev.expr(tree.Root)
}

type evaler struct {
	src parse.Source
}

func (ev *evaler) errorp(r diag.Ranger, e error) Exception {
	return &exception{e, diag.NewContext(ev.src.Name, ev.src.Code, r)}
}

func (ev *evaler) expr(n *parse.Expr) (float64, error) {
	v, err := ev.term(n.Terms[0])
	if err != nil {
		return 0, err
	}
	for i, op := range n.Ops {
		u, err := ev.term(n.Terms[i+1])
		if err != nil {
			return 0, err
		}
		switch op {
		case "+":
			v += u
		case "-":
			v -= u
		}
		r := diag.MixedRanging(n.Terms[0], n.Terms[i+1])
		if err := ev.checkFinite(v, op, r); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func (ev *evaler) term(n *parse.Term) (float64, error) {
	v, err := ev.factor(n.Factors[0])
	if err != nil {
		return 0, err
	}
	for i, op := range n.Ops {
		u, err := ev.factor(n.Factors[i+1])
		if err != nil {
			return 0, err
		}
		switch op {
		case "*":
			v *= u
		case "/":
			if u == 0 {
				return 0, ev.errorp(n.Factors[i+1], errs.BadValue{
					What: "divisor", Valid: "nonzero number", Actual: "0"})
			}
			v /= u
		}
		r := diag.MixedRanging(n.Factors[0], n.Factors[i+1])
		if err := ev.checkFinite(v, op, r); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func (ev *evaler) factor(n *parse.Factor) (float64, error) {
	v, err := ev.power(n.Power)
	if err != nil {
		return 0, err
	}
	for _, sign := range n.Signs {
		if sign == "-" {
			v = -v
		}
	}
	return v, nil
}

func (ev *evaler) power(n *parse.Power) (float64, error) {
	base, err := ev.primary(n.Base)
	if err != nil {
		return 0, err
	}
	if n.Exp == nil {
		return base, nil
	}
	exp, err := ev.factor(n.Exp)
	if err != nil {
		return 0, err
	}
	v := math.Pow(base, exp)
	if err := ev.checkFinite(v, "**", n); err != nil {
		return 0, err
	}
	return v, nil
}

func (ev *evaler) primary(n *parse.Primary) (float64, error) {
	switch n.Type {
	case parse.Number:
		return n.Value, nil
	case parse.Variable:
		return 0, ev.errorp(n, errs.Undefined{What: "variable", Name: n.Ident})
	case parse.Paren:
		return ev.expr(n.Expr)
	case parse.Call:
		return ev.call(n)
	default:
		panic("bad primary type " + n.Type.String())
	}
}

func (ev *evaler) call(n *parse.Primary) (float64, error) {
	arg, err := ev.expr(n.Expr)
	if err != nil {
		return 0, err
	}
	switch n.Ident {
	case "sqrt":
		if arg < 0 {
			return 0, ev.errorp(n.Expr, errs.BadValue{
				What:   "argument to sqrt",
				Valid:  "non-negative number",
				Actual: FormatNumber(arg)})
		}
		return math.Sqrt(arg), nil
	default:
		return 0, ev.errorp(n, errs.Undefined{What: "function", Name: n.Ident})
	}
}

func (ev *evaler) checkFinite(v float64, op string, r diag.Ranger) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ev.errorp(r, errs.BadValue{
			What:   "result of " + op,
			Valid:  "finite number",
			Actual: FormatNumber(v)})
	}
	return nil
}
