package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStateStore(t *testing.T) {
	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "nested", "state.json"))

		pmax := uint32(60)
		state := &ClientState{
			Identity: "urn:dev:1",
			Servers: []ServerConfig{
				{ShortID: 1, URI: "coap://a", Lifetime: 300, NotificationStoring: true, DisableTimeout: 86400},
				{ShortID: 2, URI: "coaps://b", Lifetime: 600, SecurityMode: 1, QueueMode: true, DefaultMaxPeriod: &pmax},
			},
		}
		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Version != StateVersion {
			t.Errorf("Version = %d, want %d", got.Version, StateVersion)
		}
		if got.SavedAt.IsZero() {
			t.Error("SavedAt should be set")
		}
		if got.Identity != "urn:dev:1" || len(got.Servers) != 2 {
			t.Fatalf("unexpected state: %+v", got)
		}
		if got.Servers[1].URI != "coaps://b" || !got.Servers[1].QueueMode {
			t.Errorf("server 2 = %+v", got.Servers[1])
		}
		if got.Servers[1].DefaultMaxPeriod == nil || *got.Servers[1].DefaultMaxPeriod != 60 {
			t.Errorf("DefaultMaxPeriod = %v", got.Servers[1].DefaultMaxPeriod)
		}
		if got.Servers[0].DefaultMinPeriod != nil {
			t.Error("unset DefaultMinPeriod should stay nil")
		}
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		_ = store.Save(&ClientState{Identity: "one"})
		_ = store.Save(&ClientState{Identity: "two", SavedAt: time.Unix(100, 0)})

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Identity != "two" {
			t.Errorf("Identity = %q, want two", got.Identity)
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 1 {
			t.Errorf("expected only the state file, found %d entries", len(entries))
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("LoadCorrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		_ = os.WriteFile(path, []byte("{not json"), 0644)

		if _, err := NewStateStore(path).Load(); err == nil {
			t.Error("expected error for corrupt file")
		}
	})

	t.Run("LoadFutureVersion", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		_ = os.WriteFile(path, []byte(`{"version": 99}`), 0644)

		if _, err := NewStateStore(path).Load(); err == nil {
			t.Error("expected error for newer version")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.json"))
		_ = store.Save(&ClientState{})

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
		if got, _ := store.Load(); got != nil {
			t.Error("state should be gone after Clear")
		}
	})
}
