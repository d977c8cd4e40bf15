// Where: internal/manifest/manifest.go
// What: Deployment manifest types and loading.
// Why: Describe how a Django project is provisioned (interpreter, manage.py, requirements).
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskdeck/djdeploy/internal/meta"
	"sigs.k8s.io/yaml"
)

// Manifest describes the deployable shape of a Django project.
// All paths are relative to the project directory unless absolute.
type Manifest struct {
	Version      int           `json:"version"`
	Python       string        `json:"python,omitempty"`
	Pip          string        `json:"pip,omitempty"`
	Manage       string        `json:"manage,omitempty"`
	Requirements string        `json:"requirements,omitempty"`
	Environments []Environment `json:"environments,omitempty"`
}

// Environment names a deployment target and its Django settings wiring.
type Environment struct {
	Name     string `json:"name"`
	Settings string `json:"settings,omitempty"`
	EnvFile  string `json:"env_file,omitempty"`
}

// Default returns a manifest with the conventional Django project layout.
// Projects without a deploy.yml are provisioned with these values.
func Default() Manifest {
	return Manifest{
		Version:      1,
		Python:       "python3",
		Manage:       "manage.py",
		Requirements: "requirements.txt",
	}
}

// Path returns the manifest location for a project directory.
func Path(projectDir string) string {
	return filepath.Join(projectDir, meta.ManifestFilename)
}

// Load reads and validates the project manifest. A missing file is not an
// error: the defaults are returned so zero-config projects still provision.
func Load(projectDir string) (Manifest, error) {
	payload, err := os.ReadFile(Path(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Manifest{}, err
	}

	if err := validate(payload); err != nil {
		return Manifest{}, fmt.Errorf("validate %s: %w", meta.ManifestFilename, err)
	}

	m := Default()
	if err := yaml.Unmarshal(payload, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", meta.ManifestFilename, err)
	}
	return m, nil
}

// Save writes a manifest to the project directory.
func Save(projectDir string, m Manifest) error {
	payload, err := yaml.Marshal(&m)
	if err != nil {
		return err
	}
	return os.WriteFile(Path(projectDir), payload, 0o644)
}

// Env resolves a named environment. An empty name selects the first entry;
// a project without environments resolves to the zero Environment.
func (m Manifest) Env(name string) (Environment, error) {
	if name == "" {
		if len(m.Environments) == 0 {
			return Environment{}, nil
		}
		return m.Environments[0], nil
	}
	for _, env := range m.Environments {
		if env.Name == name {
			return env, nil
		}
	}
	return Environment{}, fmt.Errorf("environment %q not defined in %s", name, meta.ManifestFilename)
}

// ManagePath returns the manage.py location resolved against the project dir.
func (m Manifest) ManagePath(projectDir string) string {
	return resolvePath(projectDir, m.Manage)
}

// RequirementsPath returns the requirements manifest location resolved
// against the project dir.
func (m Manifest) RequirementsPath(projectDir string) string {
	return resolvePath(projectDir, m.Requirements)
}

func resolvePath(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
