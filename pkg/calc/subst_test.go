package calc

import (
	"strings"
	"testing"

	. "varcalc.dev/pkg/tt"
)

func TestSubstitute(t *testing.T) {
	Test(t, Fn("Substitute", Substitute), Table{
		Args("x+3", []Variable{{1, "x", "2"}}).Rets("(2)+3"),
		// Every occurrence is replaced.
		Args("x+x", []Variable{{1, "x", "2"}}).Rets("(2)+(2)"),
		// Only whole words match; a does not match inside area.
		Args("area", []Variable{{1, "a", "1"}}).Rets("area"),
		Args("a+area", []Variable{{1, "a", "1"}, {2, "area", "7"}}).Rets("(1)+(7)"),
		// Chained definitions resolve over multiple passes.
		Args("b", []Variable{{1, "b", "a+1"}, {2, "a", "2"}}).Rets("((2)+1)"),
		// The first variable of a duplicated name wins.
		Args("a", []Variable{{1, "a", "1"}, {2, "a", "2"}}).Rets("(1)"),
		// Values are inserted literally, without regexp expansion.
		Args("x", []Variable{{1, "x", "$1"}}).Rets("($1)"),
		Args("1+2", []Variable(nil)).Rets("1+2"),
	})
}

func TestSubstitute_CycleTerminates(t *testing.T) {
	out := Substitute("x", []Variable{{1, "x", "x+1"}})
	if !strings.Contains(out, "x") {
		t.Errorf("Substitute(%q) = %q, want the cyclic name to survive", "x", out)
	}
}

func TestSubstitute_BranchyCycleStaysBounded(t *testing.T) {
	// Each pass multiplies the number of references by 10, so without the
	// size bound the pass bound alone would admit a ~10^20-byte result.
	vars := []Variable{{1, "a", "a+a+a+a+a+a+a+a+a+a"}}
	out := Substitute("a", vars)
	if len(out) > 64*1024 {
		t.Errorf("Substitute returns %d bytes, want a bounded result", len(out))
	}
	if !strings.Contains(out, "a") {
		t.Errorf("Substitute(%q) = %q, want the cyclic name to survive", "a", out)
	}
}

func TestSubstitute_MutualCycleTerminates(t *testing.T) {
	out := Substitute("x+y", []Variable{{1, "x", "y"}, {2, "y", "x"}})
	if !strings.Contains(out, "x") && !strings.Contains(out, "y") {
		t.Errorf("Substitute(%q) = %q, want a cyclic name to survive", "x+y", out)
	}
}

func TestSubstitute_IdempotentOnceConverged(t *testing.T) {
	vars := []Variable{{1, "b", "a+1"}, {2, "a", "2"}}
	once := Substitute("b*a", vars)
	twice := Substitute(once, vars)
	if once != twice {
		t.Errorf("Substitute is not idempotent: %q, then %q", once, twice)
	}
}
