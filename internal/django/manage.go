// Where: internal/django/manage.go
// What: manage.py command helpers.
// Why: Provide a minimal, testable interface to Django's management commands.
package django

import (
	"context"

	"github.com/taskdeck/djdeploy/internal/runner"
)

// Manage invokes a project's manage.py through a CommandRunner.
type Manage struct {
	Runner runner.CommandRunner
	Dir    string // project directory commands run in
	Python string // python interpreter
	Script string // manage.py path
}

// CollectStatic aggregates static assets into the deployable location.
// Runs non-interactively; existing files are overwritten without prompting.
func (m Manage) CollectStatic(ctx context.Context) error {
	return m.Runner.Run(ctx, m.Dir, m.Python, m.Script, "collectstatic", "--noinput")
}

// Migrate applies pending schema migrations.
func (m Manage) Migrate(ctx context.Context) error {
	return m.Runner.Run(ctx, m.Dir, m.Python, m.Script, "migrate")
}

// CreateSuperuser attempts a non-interactive superuser creation. Credentials
// are read by Django from the DJANGO_SUPERUSER_* environment variables.
// Output is captured so a failure can be classified by the caller.
func (m Manage) CreateSuperuser(ctx context.Context) ([]byte, error) {
	return m.Runner.RunOutput(ctx, m.Dir, m.Python, m.Script, "createsuperuser", "--noinput")
}

// ChangePassword resets an account's password. Django's changepassword
// command prompts twice; the password is fed to stdin both times.
func (m Manage) ChangePassword(ctx context.Context, username, password string) error {
	stdin := password + "\n" + password + "\n"
	return m.Runner.RunInput(ctx, m.Dir, stdin, m.Python, m.Script, "changepassword", username)
}
