// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/taskdeck/djdeploy/internal/config"
	"github.com/taskdeck/djdeploy/internal/runner"
	"github.com/taskdeck/djdeploy/internal/state"
	"github.com/taskdeck/djdeploy/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	ProjectDir string
	Out        io.Writer
	Runner     runner.CommandRunner
	Store      state.Store
	Now        func() time.Time
	Confirm    func(message string) (bool, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	ProjectDir string `short:"C" name:"project-dir" help:"Project directory (default: current)"`
	EnvFlag    string `short:"e" name:"env" help:"Manifest environment (default: first)"`
	EnvFile    string `name:"env-file" help:"Path to .env file"`

	Provision ProvisionCmd `cmd:"" help:"Run the deployment sequence"`
	Superuser SuperuserCmd `cmd:"" help:"Ensure the admin account matches the configured credentials"`
	Check     CheckCmd     `cmd:"" help:"Validate project and environment without running anything"`
	Init      InitCmd      `cmd:"" help:"Generate a starter deploy.yml"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type ProvisionCmd struct {
	SkipInstall bool `name:"skip-install" help:"Skip dependency installation"`
	SkipStatic  bool `name:"skip-static" help:"Skip static asset collection"`
}

type SuperuserCmd struct{}

type CheckCmd struct{}

type InitCmd struct {
	Force bool `help:"Overwrite an existing deploy.yml without prompting"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	// Handle no arguments: show project information
	if len(args) == 0 {
		return runInfo(CLI{}, deps, out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	loadEnvFile(cli, deps, out)

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"provision": runProvision,
		"superuser": runSuperuser,
		"check":     runCheck,
		"init":      runInit,
		"version":   func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 1, false
}

// loadEnvFile loads variables from --env-file, or from .env in the project
// directory when present. Existing process variables are never overridden.
func loadEnvFile(cli CLI, deps Dependencies, out io.Writer) {
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
		return
	}
	path := filepath.Join(projectDir(cli, deps), ".env")
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			fmt.Fprintf(out, "Warning: failed to load %s: %v\n", path, err)
		}
	}
}

func projectDir(cli CLI, deps Dependencies) string {
	if cli.ProjectDir != "" {
		return cli.ProjectDir
	}
	return deps.ProjectDir
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.GetVersion())
	return 0
}
