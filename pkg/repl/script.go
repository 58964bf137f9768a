package repl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"varcalc.dev/pkg/calc"
	"varcalc.dev/pkg/diag"
	"varcalc.dev/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd   bool
	Check bool
	JSON  bool
}

// Executes a calculator script, line by line. The first failing line
// terminates the script.
func script(fds [3]*os.File, arg0 string, cfg *scriptCfg) int {
	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	if cfg.Check {
		return check(fds, name, code, cfg)
	}

	s := &session{fds: fds, store: calc.NewStore()}
	for i, line := range strings.Split(code, "\n") {
		err := s.line(lineName(name, i, cfg.Cmd), line)
		if err == errQuit {
			break
		} else if err != nil {
			diag.ShowError(fds[2], err)
			return 2
		}
	}
	return 0
}

// Parses every line of the script without evaluating anything, reporting all
// errors instead of stopping at the first one.
func check(fds [3]*os.File, name, code string, cfg *scriptCfg) int {
	var errs []*parse.Error
	for i, line := range strings.Split(code, "\n") {
		err := checkLine(lineName(name, i, cfg.Cmd), line)
		errs = append(errs, parse.UnpackErrors(err)...)
	}
	if cfg.JSON {
		fmt.Fprintf(fds[1], "%s\n", errorsToJSON(errs))
	} else {
		for _, err := range errs {
			diag.ShowError(fds[2], err)
		}
	}
	if len(errs) > 0 {
		return 2
	}
	return 0
}

// Parses the expression part of one line of input. Commands and blank lines
// have nothing to parse; for a variable definition the expression part is the
// value. Variables are not substituted, so unknown names pass the check.
func checkLine(name, text string) error {
	trimmed := strings.TrimSpace(text)
	switch trimmed {
	case "", "quit", "vars":
		return nil
	}
	if strings.HasPrefix(trimmed, "!") {
		return nil
	}
	switch fields := strings.Fields(trimmed); fields[0] {
	case "del", "history":
		return nil
	}
	expr := text
	if i := strings.IndexByte(text, '='); i >= 0 {
		// A blank value is legal and defaults to 0.
		if strings.TrimSpace(text[i+1:]) == "" {
			return nil
		}
		expr = text[i+1:]
	}
	_, err := parse.Parse(parse.Source{Name: name, Code: calc.Normalize(expr)})
	return err
}

// Names a line of the script in diagnostics. Code from -c is a single line
// and goes by the name of the whole script.
func lineName(name string, i int, cmd bool) string {
	if cmd {
		return name
	}
	return fmt.Sprintf("%v:%v", name, i+1)
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to
// JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts parse errors into JSON.
func errorsToJSON(errs []*parse.Error) []byte {
	var converted []errorInJSON
	for _, e := range errs {
		converted = append(converted,
			errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
