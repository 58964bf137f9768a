package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"varcalc.dev/pkg/strutil"
)

// The interface the line editor has to satisfy.
type editor interface {
	ReadCode() (string, error)
}

// A plain line editor backed by a bufio.Reader. The prompt is written to out
// before each read; interactive sessions leave it empty when the input is not
// a terminal.
type lineEditor struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newLineEditor(in *os.File, out io.Writer, prompt string) *lineEditor {
	return &lineEditor{bufio.NewReader(in), out, prompt}
}

func (ed *lineEditor) ReadCode() (string, error) {
	if ed.prompt != "" {
		fmt.Fprint(ed.out, ed.prompt)
	}
	line, err := ed.in.ReadString('\n')
	if line != "" && err == io.EOF {
		// Accept a final line that is missing the line ending. The next read
		// reports EOF again with an empty line.
		err = nil
	}
	return strutil.ChopLineEnding(line), err
}
