// Package main tests for the edfdur CLI entry point.
package main

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestMain_HelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command("go", "run", ".", "--help").CombinedOutput()
	if err != nil {
		t.Fatalf("--help failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(string(out), "Usage:") {
		t.Errorf("--help output missing usage:\n%s", out)
	}
}

func TestMain_VersionFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command("go", "run", ".", "--version").CombinedOutput()
	if err != nil {
		t.Fatalf("--version failed: %v\noutput: %s", err, out)
	}
	if !strings.HasPrefix(string(out), "edfdur ") {
		t.Errorf("--version output = %q", out)
	}
}

// go run reports a child's non-zero status as its own exit code 1, so the
// exact code is checked in the cli package.
func TestMain_MissingFileFails(t *testing.T) {
	t.Parallel()

	out, err := exec.Command("go", "run", ".", "does-not-exist.edf").CombinedOutput()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected non-zero exit, got %v\noutput: %s", err, out)
	}
	if !strings.Contains(string(out), "file does not exist (does-not-exist.edf)") {
		t.Errorf("output = %s", out)
	}
}
