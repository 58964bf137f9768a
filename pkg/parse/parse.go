// Package parse implements parsing of arithmetic expressions.
//
// The parser builds a hybrid of AST (abstract syntax tree) and parse tree
// (a.k.a. concrete syntax tree). The AST part only includes parts that are
// semantically significant -- i.e. skipping symbols that do not alter the
// semantics, and is embodied in the fields of each *Node type. The parse tree
// part corresponds to all the text in the original source text, and is
// embodied in the children of each *Node type.
package parse

//go:generate stringer -type=PrimaryType -output=string.go

import (
	"fmt"
	"strconv"

	"varcalc.dev/pkg/diag"
)

// Tree represents a parsed tree.
type Tree struct {
	Root   *Expr
	Source Source
}

// Parse parses the given source as an expression. The returned error may
// contain one or more parse errors, which can be unpacked with UnpackErrors.
func Parse(src Source) (Tree, error) {
	tree := Tree{&Expr{}, src}
	err := ParseAs(src, tree.Root)
	return tree, err
}

// ParseAs parses the given source as a node, depending on the dynamic type of
// n. The returned error may contain one or more parse errors, which can be
// unpacked with UnpackErrors.
func ParseAs(src Source, n Node) error {
	ps := &parser{srcName: src.Name, src: src.Code}
	parse(ps, n)
	ps.done()
	return ps.assembleError()
}

// Errors.
var (
	errShouldBePrimary = newError("", "number", "variable", "'('")
	errShouldBeRParen  = newError("", "')'")
)

// Expr = Term { ("+" | "-") Term }
type Expr struct {
	node
	Terms []*Term
	Ops   []string
}

func (en *Expr) parse(ps *parser) {
	parse(ps, &Term{}).addTo(&en.Terms, en)
	for r := ps.peek(); r == '+' || r == '-'; r = ps.peek() {
		ps.next()
		addSep(en, ps)
		en.Ops = append(en.Ops, string(r))
		parse(ps, &Term{}).addTo(&en.Terms, en)
	}
}

// Term = Factor { ("*" | "/") Factor }
type Term struct {
	node
	Factors []*Factor
	Ops     []string
}

func (tn *Term) parse(ps *parser) {
	parse(ps, &Factor{}).addTo(&tn.Factors, tn)
	for {
		r := ps.peek()
		// A * that starts a ** operator is not a multiplication.
		if r != '/' && (r != '*' || ps.hasPrefix("**")) {
			break
		}
		ps.next()
		addSep(tn, ps)
		tn.Ops = append(tn.Ops, string(r))
		parse(ps, &Factor{}).addTo(&tn.Factors, tn)
	}
}

// Factor = { "-" | "+" } Power
type Factor struct {
	node
	Signs []string
	Power *Power
}

func (fn *Factor) parse(ps *parser) {
	for r := ps.peek(); r == '+' || r == '-'; r = ps.peek() {
		ps.next()
		addSep(fn, ps)
		fn.Signs = append(fn.Signs, string(r))
	}
	parse(ps, &Power{}).addAs(&fn.Power, fn)
}

// Power = Primary [ "**" Factor ]
//
// The exponent is a Factor rather than another Power. This makes
// exponentiation right-associative and allows a signed exponent, as in 2**-1.
type Power struct {
	node
	Base *Primary
	Exp  *Factor
}

func (pn *Power) parse(ps *parser) {
	parse(ps, &Primary{}).addAs(&pn.Base, pn)
	if ps.hasPrefix("**") {
		ps.next()
		ps.next()
		addSep(pn, ps)
		parse(ps, &Factor{}).addAs(&pn.Exp, pn)
	}
}

// PrimaryType is the type of a Primary.
type PrimaryType int

// Possible values for PrimaryType.
const (
	BadPrimary PrimaryType = iota
	Number
	Variable
	Paren
	Call
)

// Primary = Number | Variable | "(" Expr ")" | Ident "(" Expr ")"
type Primary struct {
	node
	Type PrimaryType
	// The parsed value, if Type is Number.
	Value float64
	// The referenced name if Type is Variable, or the function name if Type
	// is Call.
	Ident string
	// The enclosed expression if Type is Paren, or the argument if Type is
	// Call.
	Expr *Expr
}

func (pn *Primary) parse(ps *parser) {
	switch r := ps.peek(); {
	case r == '(':
		pn.paren(ps)
	case isDigit(r) || r == '.':
		pn.number(ps)
	case isIdentStart(r):
		pn.variableOrCall(ps)
	default:
		ps.error(errShouldBePrimary)
	}
}

func (pn *Primary) paren(ps *parser) {
	pn.Type = Paren
	ps.next()
	addSep(pn, ps)
	parse(ps, &Expr{}).addAs(&pn.Expr, pn)
	if !parseSep(pn, ps, ')') {
		ps.error(errShouldBeRParen)
	}
}

func (pn *Primary) number(ps *parser) {
	pn.Type = Number
	begin := ps.pos
	for r := ps.peek(); isDigit(r) || r == '.'; r = ps.peek() {
		ps.next()
	}
	text := ps.src[begin:ps.pos]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		ps.errorp(diag.Ranging{From: begin, To: ps.pos}, fmt.Errorf("bad number %q", text))
		return
	}
	pn.Value = f
}

func (pn *Primary) variableOrCall(ps *parser) {
	begin := ps.pos
	for r := ps.peek(); isIdentCont(r); r = ps.peek() {
		ps.next()
	}
	name := ps.src[begin:ps.pos]
	if ps.peek() != '(' {
		pn.Type = Variable
		pn.Ident = name
		return
	}
	pn.Type = Call
	pn.Ident = name
	if name != "sqrt" {
		ps.errorp(diag.Ranging{From: begin, To: ps.pos},
			fmt.Errorf("unknown function %q", name))
	}
	ps.next()
	addSep(pn, ps)
	parse(ps, &Expr{}).addAs(&pn.Expr, pn)
	if !parseSep(pn, ps, ')') {
		ps.error(errShouldBeRParen)
	}
}

// Sep is the catch-all node type for leaf nodes that lack internal structures
// and semantics, and serve solely for syntactic purposes. The parsing of
// separators depend on the Parent node; as such it lacks a genuine parse
// method.
type Sep struct{ node }

// NewSep makes a new Sep.
func NewSep(src string, begin, end int) *Sep {
	return &Sep{node{diag.Ranging{From: begin, To: end}, src[begin:end], nil, nil}}
}

func (*Sep) parse(*parser) {
	// A no-op, only to satisfy the Node interface.
}

func addSep(n Node, ps *parser) {
	var begin int
	ch := Children(n)
	if len(ch) > 0 {
		begin = ch[len(ch)-1].Range().To
	} else {
		begin = n.Range().From
	}
	if begin < ps.pos {
		addChild(n, NewSep(ps.src, begin, ps.pos))
	}
}

func parseSep(n Node, ps *parser, sep rune) bool {
	if ps.peek() == sep {
		ps.next()
		addSep(n, ps)
		return true
	}
	return false
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentCont(r rune) bool { return isIdentStart(r) || isDigit(r) }
