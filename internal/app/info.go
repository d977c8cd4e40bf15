// Where: internal/app/info.go
// What: No-args information view.
// Why: Show the project's deploy wiring and the last recorded run at a glance.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/taskdeck/djdeploy/internal/ui"
)

// runInfo displays the resolved manifest and the last provisioning run.
func runInfo(cli CLI, deps Dependencies, out io.Writer) int {
	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header("📦", ctxInfo.ProjectName)
	console.Item("Directory", ctxInfo.ProjectDir)
	console.Item("Python", ctxInfo.Manifest.Python)
	console.Item("manage.py", ctxInfo.Manifest.Manage)
	console.Item("Requirements", ctxInfo.Manifest.Requirements)

	if len(ctxInfo.Manifest.Environments) > 0 {
		var names []string
		for _, env := range ctxInfo.Manifest.Environments {
			names = append(names, env.Name)
		}
		console.Item("Environments", strings.Join(names, ", "))
	}

	if deps.Store != nil {
		record, ok, err := deps.Store.Load(ctxInfo.ProjectName)
		if err != nil {
			fmt.Fprintf(out, "Warning: failed to load run record: %v\n", err)
		} else if ok {
			console.Header("🕘", "Last provision")
			console.Item("When", record.Timestamp)
			if record.Environment != "" {
				console.Item("Environment", record.Environment)
			}
			console.Item("Steps", strings.Join(record.Steps, ", "))
			if record.Superuser != "" {
				console.Item("Superuser", record.Superuser)
			}
		}
	}

	return 0
}
