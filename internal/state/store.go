// Where: internal/state/store.go
// What: Provision run-record persistence.
// Why: Store and retrieve the last provisioning result from a consistent location.
package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/taskdeck/djdeploy/internal/constants"
	"github.com/taskdeck/djdeploy/internal/envutil"
	"github.com/taskdeck/djdeploy/internal/meta"
)

// RunRecord captures the outcome of a provisioning run.
type RunRecord struct {
	Timestamp   string   `json:"timestamp"`
	Environment string   `json:"environment,omitempty"`
	Steps       []string `json:"steps"`
	Superuser   string   `json:"superuser,omitempty"`
}

// Store persists run records per project.
type Store interface {
	Load(project string) (RunRecord, bool, error)
	Save(project string, record RunRecord) error
	Remove(project string) error
}

type runStateStore struct{}

// NewStore creates a Store backed by the local filesystem.
func NewStore() Store {
	return runStateStore{}
}

func (runStateStore) Load(project string) (RunRecord, bool, error) {
	path, err := statePath(project)
	if err != nil {
		return RunRecord{}, false, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RunRecord{}, false, nil
		}
		return RunRecord{}, false, err
	}
	var record RunRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return RunRecord{}, false, err
	}
	return record, true, nil
}

func (runStateStore) Save(project string, record RunRecord) error {
	path, err := statePath(project)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func (runStateStore) Remove(project string) error {
	path, err := statePath(project)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func statePath(project string) (string, error) {
	home, err := resolveHome(project)
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "state.json"), nil
}

// resolveHome determines the base directory for project-specific data.
// Uses DJDEPLOY_HOME if set, otherwise ~/.djdeploy/<project>.
func resolveHome(project string) (string, error) {
	override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixHome))
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(project)
	if name == "" {
		name = "default"
	}
	return filepath.Join(home, meta.HomeDir, name), nil
}
