package presets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var PresetsFS embed.FS

// Load reads a preset asset, preferring an on-disk copy under presets/ so
// designers can iterate without rebuilding, falling back to the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PresetsFS.ReadFile(clean)
}

// Names lists the embedded preset basenames without extension, sorted.
func Names() []string {
	entries, err := fs.ReadDir(PresetsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "presets/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("presets", filepath.FromSlash(clean))
}
