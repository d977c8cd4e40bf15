// Where: internal/app/command_context.go
// What: Per-command context resolution.
// Why: Resolve the manifest, environment, and Django wiring once per command.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/taskdeck/djdeploy/internal/constants"
	"github.com/taskdeck/djdeploy/internal/django"
	"github.com/taskdeck/djdeploy/internal/manifest"
)

// CommandContext carries everything a handler needs about the target project.
type CommandContext struct {
	ProjectDir  string
	ProjectName string
	Manifest    manifest.Manifest
	Env         manifest.Environment
}

// resolveCommandContext loads the manifest, selects the environment, and
// applies environment-level settings (env file, DJANGO_SETTINGS_MODULE).
func resolveCommandContext(cli CLI, deps Dependencies) (CommandContext, error) {
	dir := projectDir(cli, deps)
	if dir == "" {
		return CommandContext{}, fmt.Errorf("project directory not set")
	}

	m, err := manifest.Load(dir)
	if err != nil {
		return CommandContext{}, err
	}

	env, err := m.Env(cli.EnvFlag)
	if err != nil {
		return CommandContext{}, err
	}
	applyEnvironment(dir, env)

	return CommandContext{
		ProjectDir:  dir,
		ProjectName: filepath.Base(dir),
		Manifest:    m,
		Env:         env,
	}, nil
}

// applyEnvironment exports the selected environment's settings. Values
// already present in the process environment win.
func applyEnvironment(projectDir string, env manifest.Environment) {
	if env.EnvFile != "" {
		path := env.EnvFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		// godotenv never overrides existing variables.
		_ = godotenv.Load(path)
	}
	if env.Settings != "" && os.Getenv(constants.EnvSettingsModule) == "" {
		_ = os.Setenv(constants.EnvSettingsModule, env.Settings)
	}
}

// djangoManage builds the manage.py invoker for the resolved context.
func (c CommandContext) djangoManage(deps Dependencies) django.Manage {
	return django.Manage{
		Runner: deps.Runner,
		Dir:    c.ProjectDir,
		Python: c.Manifest.Python,
		Script: c.Manifest.Manage,
	}
}

// djangoPip builds the dependency installer for the resolved context.
func (c CommandContext) djangoPip(deps Dependencies) django.Pip {
	return django.Pip{
		Runner: deps.Runner,
		Dir:    c.ProjectDir,
		Python: c.Manifest.Python,
		Bin:    c.Manifest.Pip,
	}
}
