// Where: cmd/djdeploy/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/taskdeck/djdeploy/internal/app"
	"github.com/taskdeck/djdeploy/internal/interaction"
	"github.com/taskdeck/djdeploy/internal/runner"
	"github.com/taskdeck/djdeploy/internal/state"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the CLI:
// the command runner, the run-record store, and interaction hooks.
func buildDependencies() (app.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	deps := app.Dependencies{
		ProjectDir: projectDir,
		Out:        os.Stdout,
		Runner:     runner.ExecRunner{},
		Store:      state.NewStore(),
		Now:        time.Now,
		Confirm:    interaction.PromptYesNo,
	}
	return deps, nil
}
