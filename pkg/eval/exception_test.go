package eval

import (
	"errors"
	"strings"
	"testing"

	"varcalc.dev/pkg/diag"
)

func TestReason(t *testing.T) {
	underlying := errors.New("foo")
	if r := Reason(NewException(underlying, nil)); r != underlying {
		t.Errorf("Reason(exception) = %v, want %v", r, underlying)
	}
	if r := Reason(underlying); r != underlying {
		t.Errorf("Reason(plain error) = %v, want %v", r, underlying)
	}
}

func TestException_Error(t *testing.T) {
	exc := NewException(errors.New("foo"), nil)
	if exc.Error() != "foo" {
		t.Errorf("Error() = %q, want %q", exc.Error(), "foo")
	}
}

func TestException_Show(t *testing.T) {
	exc := NewException(errors.New("boom"),
		diag.NewContext("[test]", "1/0", diag.Ranging{From: 2, To: 3}))
	show := exc.Show("")
	if !strings.Contains(show, "Exception:") || !strings.Contains(show, "boom") {
		t.Errorf("Show(...) = %q, want it to contain the cause", show)
	}
	if !strings.Contains(show, "[test], line 1:") {
		t.Errorf("Show(...) = %q, want it to contain the context", show)
	}
}
