package repl

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"varcalc.dev/pkg/prog"
)

func TestMakePaths(t *testing.T) {
	dir := setupHome(t)

	paths := MakePaths(io.Discard, &prog.Flags{})

	wantRc := filepath.Join(dir, "config", "varcalc", "rc.yaml")
	if paths.Rc != wantRc {
		t.Errorf("got rc path %q, want %q", paths.Rc, wantRc)
	}
	wantDb := filepath.Join(dir, "state", "varcalc", "db.bolt")
	if paths.Db != wantDb {
		t.Errorf("got db path %q, want %q", paths.Db, wantDb)
	}

	// The directory of the database is created eagerly, so that opening the
	// database can't fail on a missing directory.
	stat, err := os.Stat(filepath.Dir(paths.Db))
	if err != nil {
		t.Fatalf("could not stat db directory: %v", err)
	}
	if !stat.IsDir() {
		t.Errorf("db directory is not a directory")
	}
}

func TestMakePaths_Overrides(t *testing.T) {
	setupHome(t)

	paths := MakePaths(io.Discard, &prog.Flags{RC: "my-rc.yaml", DB: "my.db"})
	if paths.Rc != "my-rc.yaml" {
		t.Errorf("got rc path %q, want %q", paths.Rc, "my-rc.yaml")
	}
	if paths.Db != "my.db" {
		t.Errorf("got db path %q, want %q", paths.Db, "my.db")
	}

	paths = MakePaths(io.Discard, &prog.Flags{NoRc: true})
	if paths.Rc != "" {
		t.Errorf("got rc path %q, want empty", paths.Rc)
	}
}
