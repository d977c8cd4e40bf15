// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Superuser Credentials (consumed by Django's createsuperuser --noinput)
	EnvSuperuserUsername = "DJANGO_SUPERUSER_USERNAME"
	EnvSuperuserEmail    = "DJANGO_SUPERUSER_EMAIL"
	EnvSuperuserPassword = "DJANGO_SUPERUSER_PASSWORD"

	// Django Runtime Configuration
	EnvSettingsModule = "DJANGO_SETTINGS_MODULE"

	// Host Overrides (suffixes combined with the DJDEPLOY prefix)
	HostSuffixHome       = "HOME"
	HostSuffixConfigPath = "CONFIG_PATH"
	HostSuffixConfigHome = "CONFIG_HOME"
)
