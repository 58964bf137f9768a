package repl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Contents of rc.yaml, which configures the interactive mode.
type rcFile struct {
	// Prompt written before each line of input.
	Prompt string `yaml:"prompt"`
	// Variables inserted into the table on startup.
	Variables []rcVariable `yaml:"variables"`
}

type rcVariable struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

const defaultPrompt = "> "

// Reads the rc file. A missing file is not an error. The returned rcFile is
// always usable; when the file cannot be read or parsed it falls back to the
// defaults.
func readRC(fname string) (*rcFile, error) {
	rc := &rcFile{Prompt: defaultPrompt}
	if fname == "" {
		return rc, nil
	}
	bs, err := os.ReadFile(fname)
	if err != nil {
		if os.IsNotExist(err) {
			return rc, nil
		}
		return rc, err
	}
	if err := yaml.Unmarshal(bs, rc); err != nil {
		return &rcFile{Prompt: defaultPrompt}, fmt.Errorf("parse %v: %v", fname, err)
	}
	return rc, nil
}
