package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"varcalc.dev/pkg/calc"
	"varcalc.dev/pkg/diag"
	"varcalc.dev/pkg/history"
	"varcalc.dev/pkg/sys"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Paths Paths
}

// Interact runs an interactive calculator session.
func Interact(fds [3]*os.File, cfg *InteractConfig) {
	rc, err := readRC(cfg.Paths.Rc)
	if err != nil {
		diag.ShowError(fds[2], err)
	}

	store := calc.NewStore()
	for _, v := range rc.Variables {
		if _, err := store.Insert(v.Name, v.Value); err != nil {
			diag.ShowError(fds[2], err)
		}
	}

	var hist history.Store
	if cfg.Paths.Db != "" {
		hist, err = history.NewStore(cfg.Paths.Db)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot open history database:", err)
			fmt.Fprintln(fds[2], "Continuing without command history.")
			hist = nil
		} else {
			defer hist.Close()
		}
	}

	s := &session{fds: fds, store: store, hist: hist}

	// The prompt would garble the output when the input does not come from a
	// terminal, like in "varcalc < foo".
	prompt := ""
	if sys.IsATTY(fds[0]) {
		prompt = rc.Prompt
	}
	var ed editor = newLineEditor(fds[0], fds[2], prompt)

	cmdNum := 0
	for {
		cmdNum++

		line, err := ed.ReadCode()
		if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			break
		}

		// Recall commands are not stored, so !! never recalls itself.
		if trimmed := strings.TrimSpace(line); s.hist != nil &&
			trimmed != "" && !strings.HasPrefix(trimmed, "!") {
			if _, err := s.hist.Add(line); err != nil {
				logger.Println("add history entry:", err)
			}
		}

		err = s.line(fmt.Sprintf("[tty %v]", cmdNum), line)
		if err == errQuit {
			break
		} else if err != nil {
			diag.ShowError(fds[2], err)
		}
	}
}
