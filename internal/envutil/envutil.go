// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"os"

	"github.com/taskdeck/djdeploy/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining the tool prefix with the given suffix.
// Example: HostEnvKey("HOME") returns "DJDEPLOY_HOME".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + suffix
}

// GetHostEnv retrieves a host-level environment variable.
// Example: GetHostEnv("HOME") returns the value of DJDEPLOY_HOME.
func GetHostEnv(suffix string) string {
	return os.Getenv(HostEnvKey(suffix))
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) {
	_ = os.Setenv(HostEnvKey(suffix), value)
}
