// Varcalc is a calculator with variables. Expressions are plain arithmetic;
// variables stand for expression text and are substituted before evaluation.
// It is suitable for both interactive use and scripting.
package main

import (
	"os"

	"varcalc.dev/pkg/buildinfo"
	"varcalc.dev/pkg/prog"
	"varcalc.dev/pkg/repl"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, repl.Program{})))
}
