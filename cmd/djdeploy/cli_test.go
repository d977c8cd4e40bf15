// Where: cmd/djdeploy/cli_test.go
// What: Tests for CLI dependency wiring.
// Why: Ensure the entrypoint wires concrete implementations.
package main

import (
	"errors"
	"testing"
)

func TestBuildDependencies(t *testing.T) {
	deps, err := buildDependencies()
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	if deps.ProjectDir == "" {
		t.Fatalf("expected project dir to be set")
	}
	if deps.Runner == nil {
		t.Fatalf("expected runner to be wired")
	}
	if deps.Store == nil {
		t.Fatalf("expected store to be wired")
	}
	if deps.Now == nil || deps.Confirm == nil {
		t.Fatalf("expected time and confirm hooks to be wired")
	}
}

func TestBuildDependenciesGetwdFailure(t *testing.T) {
	original := getwd
	getwd = func() (string, error) { return "", errors.New("boom") }
	defer func() { getwd = original }()

	if _, err := buildDependencies(); err == nil {
		t.Fatalf("expected error when working directory is unavailable")
	}
}
