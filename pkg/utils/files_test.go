package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo(filepath.Join("a", "b", "..", "prog.edt"))
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("expected absolute path, got %q", full)
	}
	if filepath.Base(full) != "prog.edt" || filepath.Base(dir) != "a" {
		t.Errorf("unexpected split: %q / %q", full, dir)
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.edt")
	if err := os.WriteFile(path, []byte("let a = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	full, src, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if full != path || src != "let a = 1;\n" {
		t.Errorf("got %q, %q", full, src)
	}

	if _, _, err := ReadSource(filepath.Join(t.TempDir(), "missing.edt")); err == nil {
		t.Error("expected error for a missing file")
	}
}
