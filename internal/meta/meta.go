// Where: internal/meta/meta.go
// What: Tool identity constants.
// Why: Keep the binary name, home directory, and env prefix in one place.
package meta

const (
	// Project Identity
	AppName   = "djdeploy"
	EnvPrefix = "DJDEPLOY"

	// Directory Layout
	HomeDir = ".djdeploy"

	// ManifestFilename is the per-project deployment manifest.
	ManifestFilename = "deploy.yml"
)
