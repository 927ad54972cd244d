package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore opens an isolated gdata manager and removes its directory
// when the test ends. Returns nil when the platform offers no storage.
func openTestStore(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	appName := fmt.Sprintf("photomode_test_%s_%d", name, time.Now().UnixNano())
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return m
}

func TestManagerWithoutStorage(t *testing.T) {
	m := NewManager(nil)

	st := m.State()
	if st.Preset != "fullframe" || st.Effects != 1 {
		t.Fatalf("defaults = %+v, want fullframe preset with effects 1", st)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save without storage should be a no-op, got %v", err)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load without storage should fall back to defaults, got %v", err)
	}
}

func TestManagerRoundtrip(t *testing.T) {
	store := openTestStore(t, "roundtrip")
	if store == nil {
		t.Skip("no storage backend available")
	}

	m := NewManager(store)
	st := m.State()
	st.Preset = "nightowl"
	st.Zoom = 0.25
	st.ISO = 0.5
	st.Shutter = 0.75
	st.Effects = 0.9
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a fresh manager over the same store sees the saved state
	again := NewManager(store)
	got := again.State()
	if got.Preset != "nightowl" || got.Zoom != 0.25 || got.ISO != 0.5 || got.Shutter != 0.75 || got.Effects != 0.9 {
		t.Fatalf("reloaded state = %+v", got)
	}
}

func TestManagerFirstRunDefaults(t *testing.T) {
	store := openTestStore(t, "firstrun")
	if store == nil {
		t.Skip("no storage backend available")
	}

	m := NewManager(store)
	if got := m.State(); got.Preset != "fullframe" {
		t.Fatalf("first run preset = %q, want fullframe", got.Preset)
	}
}
