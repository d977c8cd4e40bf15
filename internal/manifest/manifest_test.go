// Where: internal/manifest/manifest_test.go
// What: Tests for manifest loading and validation.
// Why: Ensure defaults, environment lookup, and schema rejection behave correctly.
package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingManifestReturnsDefaults(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if m.Python != "python3" {
		t.Fatalf("unexpected python: %s", m.Python)
	}
	if m.Manage != "manage.py" {
		t.Fatalf("unexpected manage: %s", m.Manage)
	}
	if m.Requirements != "requirements.txt" {
		t.Fatalf("unexpected requirements: %s", m.Requirements)
	}
}

func TestLoadManifestOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	payload := `version: 1
python: .venv/bin/python
manage: src/manage.py
environments:
  - name: production
    settings: config.settings
    env_file: .env.production
`
	if err := os.WriteFile(Path(dir), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if m.Python != ".venv/bin/python" {
		t.Fatalf("unexpected python: %s", m.Python)
	}
	if m.Requirements != "requirements.txt" {
		t.Fatalf("expected requirements default, got %s", m.Requirements)
	}
	if m.ManagePath(dir) != filepath.Join(dir, "src", "manage.py") {
		t.Fatalf("unexpected manage path: %s", m.ManagePath(dir))
	}

	env, err := m.Env("")
	if err != nil {
		t.Fatalf("resolve default env: %v", err)
	}
	if env.Name != "production" || env.Settings != "config.settings" {
		t.Fatalf("unexpected env: %+v", env)
	}
}

func TestEnvUnknownName(t *testing.T) {
	m := Default()
	m.Environments = []Environment{{Name: "staging"}}
	if _, err := m.Env("production"); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	payload := "version: 1\nrequierments: typo.txt\n"
	if err := os.WriteFile(Path(dir), []byte(payload), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestLoadRejectsMissingVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("python: python3\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "validate") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := Default()
	m.Environments = []Environment{{Name: "default", Settings: "config.settings"}}
	if err := Save(dir, m); err != nil {
		t.Fatalf("save manifest: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if len(loaded.Environments) != 1 || loaded.Environments[0].Name != "default" {
		t.Fatalf("unexpected environments: %+v", loaded.Environments)
	}
}
