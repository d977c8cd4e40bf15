// Where: internal/state/store_test.go
// What: Tests for the run-record store.
// Why: Ensure run outcomes are persisted and removable as expected.
package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taskdeck/djdeploy/internal/constants"
	"github.com/taskdeck/djdeploy/internal/envutil"
)

func TestStoreSaveLoadRemove(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stateHome := t.TempDir()
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixHome), stateHome)

	store := NewStore()
	record := RunRecord{
		Timestamp:   "2026-08-23T10:00:00Z",
		Environment: "production",
		Steps:       []string{"install", "collectstatic", "migrate", "superuser"},
		Superuser:   "created",
	}

	if err := store.Save("taskdeck", record); err != nil {
		t.Fatalf("save record: %v", err)
	}

	loaded, ok, err := store.Load("taskdeck")
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if !ok {
		t.Fatalf("expected record to exist")
	}
	if loaded.Superuser != "created" || len(loaded.Steps) != 4 {
		t.Fatalf("unexpected record: %+v", loaded)
	}

	if err := store.Remove("taskdeck"); err != nil {
		t.Fatalf("remove record: %v", err)
	}

	path := filepath.Join(stateHome, "state.json")
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		t.Fatalf("state file still exists: %v", err)
	}
}

func TestStoreLoadMissingRecord(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envutil.HostEnvKey(constants.HostSuffixHome), t.TempDir())

	_, ok, err := NewStore().Load("taskdeck")
	if err != nil {
		t.Fatalf("load missing record: %v", err)
	}
	if ok {
		t.Fatalf("expected no record")
	}
}
