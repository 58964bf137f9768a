package parse

import (
	"fmt"
	"os"
	"testing"
)

var testCases = []struct {
	name string
	code string
	node Node
	want ast

	wantErrPart  string
	wantErrAtEnd bool
	wantErrMsg   string
}{
	// Expr
	{
		name: "single number",
		code: "7",
		node: &Expr{},
		want: ast{"Expr/Term/Factor/Power/Primary", fs{
			"Type": Number, "Value": 7.0}},
	},
	{
		name: "additions and subtractions",
		code: "1+2-3",
		node: &Expr{},
		want: ast{"Expr", fs{
			"Terms": []string{"1", "2", "3"},
			"Ops":   []string{"+", "-"}}},
	},
	{
		name: "multiplication binds tighter than addition",
		code: "2+3*4",
		node: &Expr{},
		want: ast{"Expr", fs{
			"Terms": []string{"2", "3*4"},
			"Ops":   []string{"+"}}},
	},
	{
		name: "unary minus binds looser than exponentiation",
		code: "-2**2",
		node: &Expr{},
		want: ast{"Expr/Term/Factor", fs{
			"Signs": []string{"-"},
			"Power": ast{"Power", fs{"Base": "2", "Exp": "2"}}}},
	},

	// Term
	{
		name: "divisions and multiplications",
		code: "6/3*2",
		node: &Term{},
		want: ast{"Term", fs{
			"Factors": []string{"6", "3", "2"},
			"Ops":     []string{"/", "*"}}},
	},
	{
		name: "exponentiation binds tighter than multiplication",
		code: "2*3**4",
		node: &Term{},
		want: ast{"Term", fs{
			"Factors": []string{"2", "3**4"},
			"Ops":     []string{"*"}}},
	},

	// Factor
	{
		name: "sign",
		code: "-x",
		node: &Factor{},
		want: ast{"Factor", fs{"Signs": []string{"-"}, "Power": "x"}},
	},
	{
		name: "stacked signs",
		code: "--+5",
		node: &Factor{},
		want: ast{"Factor", fs{"Signs": []string{"-", "-", "+"}, "Power": "5"}},
	},

	// Power
	{
		name: "exponentiation",
		code: "2**3",
		node: &Power{},
		want: ast{"Power", fs{"Base": "2", "Exp": "3"}},
	},
	{
		name: "exponentiation is right-associative",
		code: "2**3**2",
		node: &Power{},
		want: ast{"Power", fs{"Base": "2", "Exp": "3**2"}},
	},
	{
		name: "signed exponent",
		code: "2**-1",
		node: &Power{},
		want: ast{"Power", fs{
			"Base": "2",
			"Exp":  ast{"Factor", fs{"Signs": []string{"-"}, "Power": "1"}}}},
	},

	// Primary
	{
		name: "decimal number",
		code: "3.14",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Number, "Value": 3.14}},
	},
	{
		name: "number with leading dot",
		code: ".5",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Number, "Value": 0.5}},
	},
	{
		name: "number with trailing dot",
		code: "2.",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Number, "Value": 2.0}},
	},
	{
		name: "variable",
		code: "foo_1",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Variable, "Ident": "foo_1"}},
	},
	{
		name: "sqrt without argument list is a variable",
		code: "sqrt",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Variable, "Ident": "sqrt"}},
	},
	{
		name: "parenthesized expression",
		code: "(1+2)",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Paren, "Expr": "1+2"}},
	},
	{
		name: "nested parentheses",
		code: "((1))",
		node: &Primary{},
		want: ast{"Primary", fs{
			"Type": Paren,
			"Expr": ast{"Expr/Term/Factor/Power/Primary", fs{
				"Type": Paren, "Expr": "1"}}}},
	},
	{
		name: "call",
		code: "sqrt(9)",
		node: &Primary{},
		want: ast{"Primary", fs{"Type": Call, "Ident": "sqrt", "Expr": "9"}},
	},

	// Errors
	{
		name:         "empty expression",
		code:         "",
		node:         &Expr{},
		wantErrAtEnd: true,
		wantErrMsg:   "should be number, variable or '('",
	},
	{
		name:         "trailing binary operator",
		code:         "2+",
		node:         &Expr{},
		wantErrAtEnd: true,
		wantErrMsg:   "should be number, variable or '('",
	},
	{
		name:         "trailing exponentiation operator",
		code:         "2**",
		node:         &Expr{},
		wantErrAtEnd: true,
		wantErrMsg:   "should be number, variable or '('",
	},
	{
		name:         "unmatched (",
		code:         "(2+3",
		node:         &Expr{},
		wantErrAtEnd: true,
		wantErrMsg:   "should be ')'",
	},
	{
		name:         "unfinished call",
		code:         "sqrt(",
		node:         &Expr{},
		wantErrAtEnd: true,
		wantErrMsg:   "should be number, variable or '('",
	},
	{
		name:        "unmatched )",
		code:        "2)",
		node:        &Expr{},
		wantErrPart: ")",
		wantErrMsg:  "unexpected rune ')'",
	},
	{
		name:        "bad number",
		code:        "1.2.3",
		node:        &Expr{},
		wantErrPart: "1.2.3",
		wantErrMsg:  `bad number "1.2.3"`,
	},
	{
		name:        "unknown function",
		code:        "foo(1)",
		node:        &Expr{},
		wantErrPart: "foo",
		wantErrMsg:  `unknown function "foo"`,
	},
	{
		name:        "bogus rune",
		code:        "2@3",
		node:        &Expr{},
		wantErrPart: "@",
		wantErrMsg:  "unexpected rune '@'",
	},
	{
		name:        "whitespace is not allowed",
		code:        "1 +2",
		node:        &Expr{},
		wantErrPart: " ",
		wantErrMsg:  "unexpected rune ' '",
	},
}

func TestParse(t *testing.T) {
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			n := test.node
			src := SourceForTest(test.code)
			err := ParseAs(src, n)
			if test.wantErrMsg == "" {
				if err != nil {
					t.Errorf("Parse(%q) returns error: %v", test.code, err)
				}
				err = checkParseTree(n)
				if err != nil {
					t.Errorf("Parse(%q) returns bad parse tree: %v", test.code, err)
					fmt.Fprintf(os.Stderr, "Parse tree of %q:\n", test.code)
					pprintParseTree(n, os.Stderr)
				}
				err = checkAST(n, test.want)
				if err != nil {
					t.Errorf("Parse(%q) returns bad AST: %v", test.code, err)
					fmt.Fprintf(os.Stderr, "AST of %q:\n", test.code)
					pprintAST(n, os.Stderr)
				}
			} else {
				if err == nil {
					t.Errorf("Parse(%q) returns no error, want error with %q",
						test.code, test.wantErrMsg)
				}
				parseError := UnpackErrors(err)[0]
				r := parseError.Context

				if errPart := test.code[r.From:r.To]; errPart != test.wantErrPart {
					t.Errorf("Parse(%q) returns error with part %q, want %q",
						test.code, errPart, test.wantErrPart)
				}
				if atEnd := r.From == len(test.code); atEnd != test.wantErrAtEnd {
					t.Errorf("Parse(%q) returns error at end = %v, want %v",
						test.code, atEnd, test.wantErrAtEnd)
				}
				if errMsg := parseError.Message; errMsg != test.wantErrMsg {
					t.Errorf("Parse(%q) returns error with message %q, want %q",
						test.code, errMsg, test.wantErrMsg)
				}
			}
		})
	}
}

func TestParse_ReturnsTreeContainingSourceFromArgument(t *testing.T) {
	src := SourceForTest("1")
	tree, _ := Parse(src)
	if tree.Source != src {
		t.Errorf("tree.Source = %v, want %v", tree.Source, src)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, test := range testCases {
			_ = ParseAs(SourceForTest(test.code), test.node)
		}
	}
}
