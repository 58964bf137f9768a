// Package repl is the entry point for the terminal interface of varcalc.
package repl

import (
	"os"

	"varcalc.dev/pkg/logutil"
	"varcalc.dev/pkg/prog"
)

var logger = logutil.GetLogger("[repl] ")

// Program is the terminal interface subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("too many arguments")
	}
	if len(args) > 0 {
		exit := script(fds, args[0], &scriptCfg{
			Cmd: f.CodeInArg, Check: f.Check, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("argument required to -c")
	}
	Interact(fds, &InteractConfig{Paths: MakePaths(fds[2], f)})
	return nil
}
