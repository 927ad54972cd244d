// Package settings persists the photo-mode state (active preset and slider
// positions) across runs through gdata's cross-platform storage.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

type State struct {
	Preset  string  `yaml:"preset"`
	Zoom    float64 `yaml:"zoom"`
	ISO     float64 `yaml:"iso"`
	Shutter float64 `yaml:"shutter"`
	Effects float64 `yaml:"effects"`
}

// Default returns the state used on first run or when loading fails.
func Default() *State {
	return &State{Preset: "fullframe", Effects: 1}
}

const (
	stateObject   = "photomode"
	stateProperty = "state"
)

// Manager loads and saves State. A nil gdata manager is the degraded mode:
// defaults only, Save is a silent no-op.
type Manager struct {
	store *gdata.Manager
	state *State
}

// NewManager wraps the storage manager and loads any previously saved state.
// A load failure is not fatal; the manager falls back to defaults.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, state: Default()}
	if err := m.Load(); err != nil {
		log.Printf("settings: load failed, using defaults: %v", err)
	}
	return m
}

// Load replaces the in-memory state with the stored one, if any.
func (m *Manager) Load() error {
	if m.store == nil || !m.store.ObjectPropExists(stateObject, stateProperty) {
		m.state = Default()
		return nil
	}
	data, err := m.store.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		m.state = Default()
		return fmt.Errorf("settings: load state: %w", err)
	}
	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		m.state = Default()
		return fmt.Errorf("settings: unmarshal state: %w", err)
	}
	m.state = &st
	return nil
}

// Save writes the in-memory state. No-op without a storage manager.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.state)
	if err != nil {
		return fmt.Errorf("settings: marshal state: %w", err)
	}
	if err := m.store.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		return fmt.Errorf("settings: save state: %w", err)
	}
	return nil
}

// State returns the live state. Callers mutate it directly and call Save
// when they want it persisted.
func (m *Manager) State() *State {
	return m.state
}
