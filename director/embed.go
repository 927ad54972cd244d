package director

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Script reads a director script by basename, preferring an on-disk copy
// under director/scripts/ so scripts can be tweaked without rebuilding.
func Script(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("director", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "director/")
	s = strings.TrimPrefix(s, "scripts/")
	if !strings.HasSuffix(s, ".tengo") {
		s += ".tengo"
	}
	return "scripts/" + s
}
