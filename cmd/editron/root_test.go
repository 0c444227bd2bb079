package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.edt")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIRCommand(t *testing.T) {
	path := writeSource(t, "let s = \"hi\";\nlet n = s * 2;\n")
	pngPath := filepath.Join(t.TempDir(), "ir.png")

	cmd := newIRCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--symbols", "--png", pngPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("ir: %v", err)
	}

	got := out.String()
	for _, want := range []string{`%r0 = LOADSTR "hi"`, "%r1 = MUL %r0, 2", "Symbols:", "reg %r1"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("expected PNG listing: %v", err)
	}
}

func TestIRCommandNoInstructions(t *testing.T) {
	path := writeSource(t, "let a = 1 + 2 * 3;")
	var out bytes.Buffer
	if err := runIR(&out, path, &irOptions{tokens: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "(no instructions)") {
		t.Errorf("expected empty IR note:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Tokens (10)") {
		t.Errorf("expected token dump:\n%s", out.String())
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "ab+1")
	cmd := newTokensCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Tokens (4)\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestCheckCommandReportsErrors(t *testing.T) {
	path := writeSource(t, "let x = y;")
	cmd := newCheckCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), `undefined variable "y"`) {
		t.Errorf("unexpected error: %v", err)
	}
}
