// Where: internal/app/superuser.go
// What: Superuser command handler.
// Why: Allow rotating the admin password without a full deploy.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/taskdeck/djdeploy/internal/django"
	"github.com/taskdeck/djdeploy/internal/ui"
)

// runSuperuser executes the 'superuser' command: converge the admin account
// to the credentials in the environment (create, or reset the password).
func runSuperuser(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Runner == nil {
		fmt.Fprintln(out, "superuser: runner not configured")
		return 1
	}

	ctxInfo, err := resolveCommandContext(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	creds, err := django.CredentialsFromEnv()
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Info(fmt.Sprintf("Ensuring superuser %q", creds.Username))

	result, err := ctxInfo.djangoManage(deps).EnsureSuperuser(context.Background(), creds, out)
	if err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("Superuser ready (%s)", result))
	return 0
}
