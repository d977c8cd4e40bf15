// Where: internal/app/provision.go
// What: Provision command handler.
// Why: Wire the manifest and runner into the provisioning sequence.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/taskdeck/djdeploy/internal/config"
	"github.com/taskdeck/djdeploy/internal/provision"
	"github.com/taskdeck/djdeploy/internal/state"
	"github.com/taskdeck/djdeploy/internal/ui"
)

// runProvision executes the 'provision' command: install dependencies,
// collect static assets, apply migrations, and ensure the superuser account.
func runProvision(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Runner == nil {
		fmt.Fprintln(out, "provision: runner not configured")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header("🚀", fmt.Sprintf("Provisioning %s", ctxInfo.ProjectName))

	provisioner := provision.Provisioner{
		Pip:          ctxInfo.djangoPip(deps),
		Manage:       ctxInfo.djangoManage(deps),
		Requirements: ctxInfo.Manifest.Requirements,
		Console:      console,
	}
	opts := provision.Options{
		SkipInstall: cli.Provision.SkipInstall,
		SkipStatic:  cli.Provision.SkipStatic,
	}

	result, err := provisioner.Provision(context.Background(), opts)
	if err != nil {
		return exitWithError(out, err)
	}

	recordRun(ctxInfo, deps, result, out)

	console.Success("Provisioning complete")
	console.ItemPlain(fmt.Sprintf("superuser: %s", result.Superuser))
	return 0
}

// recordRun persists the run record and registers the project globally.
// Bookkeeping failures are reported but never fail a completed deploy.
func recordRun(ctxInfo CommandContext, deps Dependencies, result provision.Result, out io.Writer) {
	timestamp := deps.Now().UTC().Format(time.RFC3339)

	if deps.Store != nil {
		record := state.RunRecord{
			Timestamp:   timestamp,
			Environment: ctxInfo.Env.Name,
			Steps:       provision.StepNames(result.Steps),
			Superuser:   string(result.Superuser),
		}
		if err := deps.Store.Save(ctxInfo.ProjectName, record); err != nil {
			fmt.Fprintf(out, "Warning: failed to record run: %v\n", err)
		}
	}

	if err := config.RegisterProject(ctxInfo.ProjectName, ctxInfo.ProjectDir, timestamp); err != nil {
		fmt.Fprintf(out, "Warning: failed to register project: %v\n", err)
	}
}
