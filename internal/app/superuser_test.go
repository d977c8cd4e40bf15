// Where: internal/app/superuser_test.go
// What: Tests for the superuser command.
// Why: Ensure the standalone upsert converges without running other steps.
package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/taskdeck/djdeploy/internal/constants"
)

func TestRunSuperuserCreates(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{outputs: map[string][]byte{"createsuperuser": []byte("Superuser created successfully.\n")}}
	deps, out, _ := testDeps(t, r)

	exitCode := Run([]string{"superuser"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}
	got := strings.Join(r.subcommands(), " ")
	if got != "createsuperuser" {
		t.Fatalf("unexpected invocations: %s", got)
	}
	if !strings.Contains(out.String(), "created") {
		t.Fatalf("missing result output: %q", out.String())
	}
}

func TestRunSuperuserResetsExistingPassword(t *testing.T) {
	setupEnv(t)
	r := &fakeRunner{
		errs:    map[string]error{"createsuperuser": errors.New("exit status 1")},
		outputs: map[string][]byte{"createsuperuser": []byte("That username is already taken.\n")},
	}
	deps, out, _ := testDeps(t, r)

	exitCode := Run([]string{"superuser"}, deps)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\n%s", exitCode, out.String())
	}
	got := strings.Join(r.subcommands(), " ")
	if got != "createsuperuser changepassword" {
		t.Fatalf("unexpected invocations: %s", got)
	}
}

func TestRunSuperuserMissingCredentials(t *testing.T) {
	setupEnv(t)
	t.Setenv(constants.EnvSuperuserEmail, "")
	r := &fakeRunner{}
	deps, out, _ := testDeps(t, r)

	exitCode := Run([]string{"superuser"}, deps)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if len(r.invocations) != 0 {
		t.Fatalf("expected no commands for missing credentials, got %v", r.subcommands())
	}
	if !strings.Contains(out.String(), constants.EnvSuperuserEmail) {
		t.Fatalf("missing diagnostics: %q", out.String())
	}
}
