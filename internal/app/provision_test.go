// Where: internal/app/provision_test.go
// What: Tests for the provision command wiring.
// Why: Ensure the full sequence runs through injected dependencies end to end.
package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskdeck/djdeploy/internal/constants"
)

func TestRunProvisionFreshRun(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{outputs: map[string][]byte{"createsuperuser": []byte("Superuser created successfully.\n")}}
	deps, out, store := testDeps(t, r)

	exitCode := Run([]string{"provision"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}

	got := strings.Join(r.subcommands(), " ")
	if got != "install collectstatic migrate createsuperuser" {
		t.Fatalf("unexpected step order: %s", got)
	}
	for _, inv := range r.invocations {
		if inv.dir != deps.ProjectDir {
			t.Fatalf("command ran outside project dir: %+v", inv)
		}
	}

	project := filepath.Base(deps.ProjectDir)
	record, ok := store.saved[project]
	if !ok {
		t.Fatalf("run record not saved: %+v", store.saved)
	}
	if record.Superuser != "created" || len(record.Steps) != 4 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Timestamp != "2026-08-23T10:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", record.Timestamp)
	}
}

func TestRunProvisionSecondRunResetsPassword(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{
		errs:    map[string]error{"createsuperuser": errors.New("exit status 1")},
		outputs: map[string][]byte{"createsuperuser": []byte("Error: That username is already taken.\n")},
	}
	deps, out, store := testDeps(t, r)

	exitCode := Run([]string{"provision"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}

	last := r.invocations[len(r.invocations)-1]
	if strings.Join(last.args, " ") != "manage.py changepassword admin" {
		t.Fatalf("unexpected fallback invocation: %v", last.args)
	}
	if last.stdin != "secret1\nsecret1\n" {
		t.Fatalf("password not piped twice: %q", last.stdin)
	}

	record := store.saved[filepath.Base(deps.ProjectDir)]
	if record.Superuser != "password-reset" {
		t.Fatalf("unexpected superuser path: %+v", record)
	}
}

func TestRunProvisionInstallFailureShortCircuits(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{errs: map[string]error{"install": errors.New("exit status 1")}}
	deps, out, store := testDeps(t, r)

	exitCode := Run([]string{"provision"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if len(r.invocations) != 1 {
		t.Fatalf("expected only install attempted, got %v", r.subcommands())
	}
	if len(store.saved) != 0 {
		t.Fatalf("failed run must not be recorded: %+v", store.saved)
	}
	if !strings.Contains(out.String(), "install dependencies") {
		t.Fatalf("missing failure message: %q", out.String())
	}
}

func TestRunProvisionMissingUsername(t *testing.T) {
	setupEnv(t)
	t.Setenv(constants.EnvSuperuserUsername, "")
	r := &fakeRunner{}
	deps, out, _ := testDeps(t, r)

	exitCode := Run([]string{"provision"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	got := strings.Join(r.subcommands(), " ")
	if got != "install collectstatic migrate" {
		t.Fatalf("expected steps 1-3 to run, got: %s", got)
	}
	if !strings.Contains(out.String(), constants.EnvSuperuserUsername) {
		t.Fatalf("missing credential diagnostics: %q", out.String())
	}
}

func TestRunProvisionSkipFlags(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{outputs: map[string][]byte{"createsuperuser": []byte("ok\n")}}
	deps, _, _ := testDeps(t, r)

	exitCode := Run([]string{"provision", "--skip-install", "--skip-static"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	got := strings.Join(r.subcommands(), " ")
	if got != "migrate createsuperuser" {
		t.Fatalf("unexpected invocations: %s", got)
	}
}

func TestRunProvisionUsesManifestEnvironment(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{outputs: map[string][]byte{"createsuperuser": []byte("ok\n")}}
	deps, _, _ := testDeps(t, r)

	payload := `version: 1
python: .venv/bin/python
environments:
  - name: staging
    settings: config.settings.staging
  - name: production
    settings: config.settings.production
`
	if err := os.WriteFile(filepath.Join(deps.ProjectDir, "deploy.yml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	exitCode := Run([]string{"--env", "production", "provision"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if got := os.Getenv(constants.EnvSettingsModule); got != "config.settings.production" {
		t.Fatalf("settings module not applied: %q", got)
	}
	if r.invocations[0].name != ".venv/bin/python" {
		t.Fatalf("manifest python not used: %+v", r.invocations[0])
	}
}

func TestRunProvisionMissingRunner(t *testing.T) {
	setupEnv(t)
	deps, _, _ := testDeps(t, nil)
	deps.Runner = nil

	if exitCode := Run([]string{"provision"}, deps); exitCode == 0 {
		t.Fatalf("expected non-zero exit code for missing runner")
	}
}
