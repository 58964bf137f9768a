package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"varcalc.dev/pkg/env"
	"varcalc.dev/pkg/prog"
)

// Paths keeps the paths of the files varcalc uses in interactive mode.
type Paths struct {
	Rc string
	Db string
}

// MakePaths resolves the paths used in interactive mode, respecting overrides
// from command-line flags. When a path cannot be resolved, it prints a
// warning to stderr and leaves the field empty, which disables the feature
// that needs the path.
func MakePaths(stderr io.Writer, f *prog.Flags) Paths {
	var p Paths
	if !f.NoRc {
		p.Rc = f.RC
		if p.Rc == "" {
			rc, err := rcPath()
			if err != nil {
				fmt.Fprintln(stderr, "Warning:", err)
				fmt.Fprintln(stderr, "Continuing without rc.yaml.")
			} else {
				p.Rc = rc
			}
		}
	}
	p.Db = f.DB
	if p.Db == "" {
		db, err := dbPath()
		if err == nil {
			err = os.MkdirAll(filepath.Dir(db), 0700)
		}
		if err != nil {
			fmt.Fprintln(stderr, "Warning:", err)
			fmt.Fprintln(stderr, "Command history will not be saved.")
		} else {
			p.Db = db
		}
	}
	return p
}

// Returns the path of rc.yaml, under the user configuration directory.
func rcPath() (string, error) {
	if configHome := os.Getenv(env.XDG_CONFIG_HOME); configHome != "" {
		return filepath.Join(configHome, "varcalc", "rc.yaml"), nil
	}
	configHome, err := defaultConfigHome()
	if err != nil {
		return "", fmt.Errorf("find path of rc.yaml: %v", err)
	}
	return filepath.Join(configHome, "varcalc", "rc.yaml"), nil
}

// Returns the path of the history database, under the user state directory.
func dbPath() (string, error) {
	if stateHome := os.Getenv(env.XDG_STATE_HOME); stateHome != "" {
		return filepath.Join(stateHome, "varcalc", "db.bolt"), nil
	}
	stateHome, err := defaultStateHome()
	if err != nil {
		return "", fmt.Errorf("find path of history database: %v", err)
	}
	return filepath.Join(stateHome, "varcalc", "db.bolt"), nil
}
