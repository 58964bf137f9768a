package repl

import (
	"io"
	"strings"
	"testing"

	"varcalc.dev/pkg/must"
)

func TestLineEditor(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	must.OK1(w.WriteString("1+2\n3*4"))
	w.Close()

	var out strings.Builder
	ed := newLineEditor(r, &out, "> ")

	line, err := ed.ReadCode()
	if line != "1+2" || err != nil {
		t.Errorf(`got (%q, %v), want ("1+2", nil)`, line, err)
	}
	// The final line has no line ending, but is still accepted.
	line, err = ed.ReadCode()
	if line != "3*4" || err != nil {
		t.Errorf(`got (%q, %v), want ("3*4", nil)`, line, err)
	}
	line, err = ed.ReadCode()
	if line != "" || err != io.EOF {
		t.Errorf(`got (%q, %v), want ("", EOF)`, line, err)
	}

	if out.String() != "> > > " {
		t.Errorf("got prompts %q, want %q", out.String(), "> > > ")
	}
}

func TestLineEditor_EmptyPromptWritesNothing(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	w.Close()

	var out strings.Builder
	ed := newLineEditor(r, &out, "")

	_, err := ed.ReadCode()
	if err != io.EOF {
		t.Errorf("got error %v, want EOF", err)
	}
	if out.String() != "" {
		t.Errorf("got output %q, want none", out.String())
	}
}
