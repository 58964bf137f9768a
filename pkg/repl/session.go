package repl

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"varcalc.dev/pkg/calc"
	"varcalc.dev/pkg/eval"
	"varcalc.dev/pkg/history"
	"varcalc.dev/pkg/parse"
)

// A session holds the mutable state of an interactive session or a running
// script: the variable table and the optional input history.
type session struct {
	fds   [3]*os.File
	store *calc.Store
	hist  history.Store // nil when the history database is unavailable
}

// Returned by session.line when the input asks to end the session.
var errQuit = errors.New("quit")

var errNoHistory = errors.New("command history is not available")

// Runs one line of input: a command, a variable definition, or an expression
// to evaluate. The name identifies the line in diagnostics.
func (s *session) line(name, text string) error {
	trimmed := strings.TrimSpace(text)
	switch trimmed {
	case "":
		return nil
	case "quit":
		return errQuit
	case "vars":
		return s.vars()
	}
	if strings.HasPrefix(trimmed, "!") {
		return s.recall(name, trimmed[1:])
	}
	switch fields := strings.Fields(trimmed); fields[0] {
	case "del":
		return s.del(fields[1:])
	case "history":
		return s.history(fields[1:])
	}
	if i := strings.IndexByte(text, '='); i >= 0 {
		return s.define(strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]))
	}
	return s.eval(name, text)
}

// Defines name to stand for value, updating the first existing variable with
// that name if there is one.
func (s *session) define(name, value string) error {
	for _, v := range s.store.List() {
		if v.Name == name {
			return s.store.Update(v.ID, name, value)
		}
	}
	_, err := s.store.Insert(name, value)
	return err
}

func (s *session) vars() error {
	for _, v := range s.store.List() {
		fmt.Fprintf(s.fds[1], "%s = %s\n", v.Name, v.Value)
	}
	return nil
}

// Deletes the first variable with each of the given names. Deleting a
// shadowed duplicate requires deleting the visible one first.
func (s *session) del(names []string) error {
	if len(names) == 0 {
		return errors.New("del: need at least one variable name")
	}
	for _, name := range names {
		id := -1
		for _, v := range s.store.List() {
			if v.Name == name {
				id = v.ID
				break
			}
		}
		if id == -1 {
			return fmt.Errorf("del: no variable %v", name)
		}
		s.store.Del(id)
	}
	return nil
}

// Lists stored inputs. With a prefix argument, lists only the inputs that
// start with the prefix.
func (s *session) history(args []string) error {
	if s.hist == nil {
		return errNoHistory
	}
	if len(args) > 1 {
		return errors.New("history: need at most one prefix")
	}
	if len(args) == 1 {
		return s.historyWithPrefix(args[0])
	}
	next, err := s.hist.NextSeq()
	if err != nil {
		return err
	}
	entries, err := s.hist.EntriesWithSeq(1, next)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		s.printEntry(entry)
	}
	return nil
}

func (s *session) historyWithPrefix(prefix string) error {
	for seq := 1; ; {
		entry, err := s.hist.Next(seq, prefix)
		if err == history.ErrNoMatchingEntry {
			return nil
		} else if err != nil {
			return err
		}
		s.printEntry(entry)
		seq = entry.Seq + 1
	}
}

func (s *session) printEntry(entry history.Entry) {
	fmt.Fprintf(s.fds[1], "%4d  %s\n", entry.Seq, entry.Text)
}

// Recalls a stored input and runs it again: !N runs the input with sequence
// number N, !prefix runs the latest input starting with the prefix, and !!
// runs the latest input. The recalled text is echoed before it runs.
func (s *session) recall(name, spec string) error {
	if s.hist == nil {
		return errNoHistory
	}
	text, err := s.recalled(spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.fds[1], text)
	return s.line(name, text)
}

func (s *session) recalled(spec string) (string, error) {
	if seq, err := strconv.Atoi(spec); err == nil {
		text, err := s.hist.Entry(seq)
		if err != nil {
			return "", fmt.Errorf("!%v: %v", spec, err)
		}
		return text, nil
	}
	prefix := spec
	if spec == "!" {
		prefix = ""
	}
	next, err := s.hist.NextSeq()
	if err != nil {
		return "", err
	}
	entry, err := s.hist.Prev(next, prefix)
	if err != nil {
		return "", fmt.Errorf("!%v: %v", spec, err)
	}
	return entry.Text, nil
}

func (s *session) eval(name, text string) error {
	expr := calc.Normalize(calc.Substitute(text, s.store.List()))
	v, err := eval.Eval(parse.Source{Name: name, Code: expr})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.fds[1], "=", eval.FormatNumber(v))
	return nil
}
