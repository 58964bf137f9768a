package history

import (
	"fmt"
	"os"
	"path/filepath"

	"varcalc.dev/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file that is removed
// when the test finishes.
func MustTempStore(c testutil.Cleanuper) Store {
	dir := testutil.TempDir(c)
	st, err := NewStore(filepath.Join(dir, "history.db"))
	if err != nil {
		panic(fmt.Sprintf("failed to create temporary store: %v", err))
	}
	c.Cleanup(func() {
		err := st.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to close temporary store:", err)
		}
	})
	return st
}
