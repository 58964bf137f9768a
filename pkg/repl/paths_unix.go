//go:build !windows

package repl

import (
	"errors"
	"os"
	"path/filepath"

	"varcalc.dev/pkg/env"
)

func defaultConfigHome() (string, error) { return homePath(".config") }

func defaultStateHome() (string, error) { return homePath(".local/state") }

func homePath(suffix string) (string, error) {
	home := os.Getenv(env.HOME)
	if home == "" {
		return "", errors.New("$HOME is not set")
	}
	return filepath.Join(home, suffix), nil
}
