package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"slangc", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"slangc", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"slangc"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildCommandWritesOutput(t *testing.T) {
	sourcePath := writeSource(t, "int x = 42;\nprint(x);")

	out, err := captureStdout(t, func() error {
		return buildCommand([]string{sourcePath})
	})
	if err != nil {
		t.Fatalf("buildCommand failed: %v", err)
	}
	if !strings.Contains(out, "Compiled") {
		t.Fatalf("unexpected stdout: %q", out)
	}

	outputPath := strings.TrimSuffix(sourcePath, ".sl") + ".py"
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "x: int = 42\nprint(x)\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}

func TestBuildCommandExplicitOutputPath(t *testing.T) {
	sourcePath := writeSource(t, "print(1);")
	outputPath := filepath.Join(t.TempDir(), "custom.py")

	if _, err := captureStdout(t, func() error {
		return buildCommand([]string{"-o", outputPath, sourcePath})
	}); err != nil {
		t.Fatalf("buildCommand failed: %v", err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestBuildCommandTokens(t *testing.T) {
	sourcePath := writeSource(t, "int x = 1;")

	out, err := captureStdout(t, func() error {
		return buildCommand([]string{"-tokens", sourcePath})
	})
	if err != nil {
		t.Fatalf("buildCommand failed: %v", err)
	}
	if !strings.Contains(out, "INT") || !strings.Contains(out, "EOF") {
		t.Fatalf("unexpected token dump: %q", out)
	}
}

func TestBuildCommandAST(t *testing.T) {
	sourcePath := writeSource(t, "int x = 1 + 2;")

	out, err := captureStdout(t, func() error {
		return buildCommand([]string{"-ast", sourcePath})
	})
	if err != nil {
		t.Fatalf("buildCommand failed: %v", err)
	}
	if !strings.Contains(out, "Program") || !strings.Contains(out, "VarDecl int x") {
		t.Fatalf("unexpected AST dump: %q", out)
	}
}

func TestBuildCommandDiagnosesWithCodeFrame(t *testing.T) {
	sourcePath := writeSource(t, "int x = 1;\nint x = 2;")

	err := buildCommand([]string{sourcePath})
	if err == nil {
		t.Fatalf("expected compile error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Variable 'x' already declared") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(msg, "--> line 2, column 1") {
		t.Fatalf("expected code frame in error: %v", err)
	}
}

func TestBuildCommandRequiresSourcePath(t *testing.T) {
	err := buildCommand(nil)
	if err == nil {
		t.Fatalf("expected source path error")
	}
	if !strings.Contains(err.Error(), "source path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"program.sl", "program.py"},
		{"dir/program.sl", "dir/program.py"},
		{"noext", "noext.py"},
	}
	for _, tc := range tests {
		if got := outputPathFor(tc.in); got != tc.want {
			t.Fatalf("outputPathFor(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.sl")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
