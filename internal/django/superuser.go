// Where: internal/django/superuser.go
// What: Idempotent superuser provisioning.
// Why: Ensure the admin account exists with the configured password on every deploy.
package django

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taskdeck/djdeploy/internal/constants"
)

// Credentials holds the superuser identity sourced from the environment.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// CredentialsFromEnv reads the three DJANGO_SUPERUSER_* variables.
// All of them must be set and non-empty.
func CredentialsFromEnv() (Credentials, error) {
	creds := Credentials{
		Username: strings.TrimSpace(os.Getenv(constants.EnvSuperuserUsername)),
		Email:    strings.TrimSpace(os.Getenv(constants.EnvSuperuserEmail)),
		Password: os.Getenv(constants.EnvSuperuserPassword),
	}
	var missing []string
	if creds.Username == "" {
		missing = append(missing, constants.EnvSuperuserUsername)
	}
	if creds.Email == "" {
		missing = append(missing, constants.EnvSuperuserEmail)
	}
	if creds.Password == "" {
		missing = append(missing, constants.EnvSuperuserPassword)
	}
	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("missing superuser credentials: %s", strings.Join(missing, ", "))
	}
	return creds, nil
}

// SuperuserResult names the path taken to reach the provisioned state.
type SuperuserResult string

const (
	SuperuserCreated       SuperuserResult = "created"
	SuperuserPasswordReset SuperuserResult = "password-reset"
)

// EnsureSuperuser converges the admin account to the desired state: the
// account exists and its password equals the configured one. Creation is
// attempted first; if it fails because the account already exists, the
// password is reset instead. Any other creation failure propagates.
func (m Manage) EnsureSuperuser(ctx context.Context, creds Credentials, out io.Writer) (SuperuserResult, error) {
	output, err := m.CreateSuperuser(ctx)
	if len(output) > 0 {
		fmt.Fprint(out, string(output))
	}
	if err == nil {
		return SuperuserCreated, nil
	}
	if !accountExists(output) {
		return "", fmt.Errorf("create superuser: %w", err)
	}
	if err := m.ChangePassword(ctx, creds.Username, creds.Password); err != nil {
		return "", fmt.Errorf("change password for %q: %w", creds.Username, err)
	}
	return SuperuserPasswordReset, nil
}

// accountExists reports whether createsuperuser failed because the account
// is already present. Django prints "That username is already taken." for
// the stock user model; custom models and direct database errors surface
// as uniqueness violations.
func accountExists(output []byte) bool {
	text := strings.ToLower(string(output))
	for _, marker := range []string{
		"already taken",
		"already exists",
		"duplicate key",
		"unique constraint",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
