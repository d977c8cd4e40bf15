// Where: internal/app/check.go
// What: Check command handler.
// Why: Surface configuration problems before a deploy touches anything.
package app

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/taskdeck/djdeploy/internal/constants"
	"github.com/taskdeck/djdeploy/internal/manifest"
	"github.com/taskdeck/djdeploy/internal/ui"
)

type checkResult struct {
	name string
	err  error
}

// runCheck executes the 'check' command: validate the manifest, the project
// layout, the interpreter, and the superuser environment without invoking
// any external framework command.
func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	console := ui.New(out)
	console.Header("🔍", "Checking project")

	dir := projectDir(cli, deps)
	if dir == "" {
		return exitWithError(out, fmt.Errorf("project directory not set"))
	}

	m, err := manifest.Load(dir)
	results := []checkResult{{name: "manifest", err: err}}
	if err != nil {
		// Without a valid manifest the remaining checks are meaningless.
		reportChecks(console, results)
		return 1
	}

	if _, envErr := m.Env(cli.EnvFlag); envErr != nil {
		results = append(results, checkResult{name: "environment", err: envErr})
	} else {
		results = append(results, checkResult{name: "environment"})
	}

	results = append(results,
		checkResult{name: "manage.py", err: statFile(m.ManagePath(dir))},
		checkResult{name: "requirements", err: statFile(m.RequirementsPath(dir))},
		checkResult{name: "python", err: lookupInterpreter(dir, m.Python)},
		checkResult{name: "superuser env", err: checkSuperuserEnv()},
	)

	failed := reportChecks(console, results)
	if failed > 0 {
		console.Failure(fmt.Sprintf("%d check(s) failed", failed))
		return 1
	}
	console.Success("All checks passed")
	return 0
}

func reportChecks(console *ui.Console, results []checkResult) int {
	failed := 0
	for _, result := range results {
		if result.err != nil {
			failed++
			console.ItemPlain(fmt.Sprintf("✗ %-14s %v", result.name, result.err))
			continue
		}
		console.ItemPlain(fmt.Sprintf("✓ %s", result.name))
	}
	return failed
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// lookupInterpreter resolves the python binary: a bare name via PATH,
// anything with a path separator via the filesystem (relative to the
// project directory, matching how commands are run).
func lookupInterpreter(dir, python string) error {
	if strings.ContainsRune(python, os.PathSeparator) {
		if !filepath.IsAbs(python) {
			python = filepath.Join(dir, python)
		}
		return statFile(python)
	}
	_, err := exec.LookPath(python)
	return err
}

func checkSuperuserEnv() error {
	var missing []string
	for _, key := range []string{
		constants.EnvSuperuserUsername,
		constants.EnvSuperuserEmail,
		constants.EnvSuperuserPassword,
	} {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unset: %s", strings.Join(missing, ", "))
	}
	return nil
}
