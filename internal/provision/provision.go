// Where: internal/provision/provision.go
// What: Deployment provisioning sequence.
// Why: Run install, collectstatic, migrate, and superuser in a fixed order.
package provision

import (
	"context"
	"fmt"

	"github.com/taskdeck/djdeploy/internal/django"
	"github.com/taskdeck/djdeploy/internal/ui"
)

// Step names a stage of the provisioning sequence.
type Step string

const (
	StepInstall       Step = "install"
	StepCollectStatic Step = "collectstatic"
	StepMigrate       Step = "migrate"
	StepSuperuser     Step = "superuser"
)

// Options toggles optional stages. The zero value runs the full sequence.
type Options struct {
	SkipInstall bool
	SkipStatic  bool
}

// Provisioner executes the deployment sequence against a single project.
// Execution is strictly linear: the first failing stage aborts the run with
// no cleanup or rollback, mirroring errexit shell semantics.
type Provisioner struct {
	Pip          django.Pip
	Manage       django.Manage
	Requirements string
	Console      *ui.Console
}

// Result reports the stages that completed and how the superuser converged.
type Result struct {
	Steps     []Step
	Superuser django.SuperuserResult
}

// Provision runs the sequence. Superuser credentials are read from the
// environment when the last stage starts, so a missing variable fails that
// stage without touching the database; earlier stages still run, matching
// the behavior of the deploy scripts this replaces.
func (p Provisioner) Provision(ctx context.Context, opts Options) (Result, error) {
	result := Result{}
	total := p.totalSteps(opts)
	index := 0

	if !opts.SkipInstall {
		index++
		p.Console.Step(index, total, "Installing dependencies")
		if err := p.Pip.InstallRequirements(ctx, p.Requirements); err != nil {
			return result, fmt.Errorf("install dependencies: %w", err)
		}
		result.Steps = append(result.Steps, StepInstall)
	}

	if !opts.SkipStatic {
		index++
		p.Console.Step(index, total, "Collecting static assets")
		if err := p.Manage.CollectStatic(ctx); err != nil {
			return result, fmt.Errorf("collect static assets: %w", err)
		}
		result.Steps = append(result.Steps, StepCollectStatic)
	}

	index++
	p.Console.Step(index, total, "Applying migrations")
	if err := p.Manage.Migrate(ctx); err != nil {
		return result, fmt.Errorf("apply migrations: %w", err)
	}
	result.Steps = append(result.Steps, StepMigrate)

	index++
	p.Console.Step(index, total, "Ensuring superuser account")
	creds, err := django.CredentialsFromEnv()
	if err != nil {
		return result, fmt.Errorf("superuser credentials: %w", err)
	}
	superuser, err := p.Manage.EnsureSuperuser(ctx, creds, p.Console.Out)
	if err != nil {
		return result, err
	}
	result.Steps = append(result.Steps, StepSuperuser)
	result.Superuser = superuser

	return result, nil
}

func (p Provisioner) totalSteps(opts Options) int {
	total := 4
	if opts.SkipInstall {
		total--
	}
	if opts.SkipStatic {
		total--
	}
	return total
}

// StepNames converts completed steps to strings for the run record.
func StepNames(steps []Step) []string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, string(step))
	}
	return names
}
