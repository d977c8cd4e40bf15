// Where: internal/django/pip.go
// What: Dependency installation helpers.
// Why: Install the project's declared dependencies before anything touches Django.
package django

import (
	"context"

	"github.com/taskdeck/djdeploy/internal/runner"
)

// Pip installs Python dependencies through a CommandRunner.
// When Bin is empty the interpreter's bundled pip is used via `python -m pip`,
// which keeps the install inside the same environment manage.py runs in.
type Pip struct {
	Runner runner.CommandRunner
	Dir    string
	Python string
	Bin    string
}

// InstallRequirements installs every dependency declared in the manifest file.
func (p Pip) InstallRequirements(ctx context.Context, requirements string) error {
	if p.Bin != "" {
		return p.Runner.Run(ctx, p.Dir, p.Bin, "install", "-r", requirements)
	}
	return p.Runner.Run(ctx, p.Dir, p.Python, "-m", "pip", "install", "-r", requirements)
}
