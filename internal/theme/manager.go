package theme

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// DefaultName is the theme compiled into the binary.
const DefaultName = "default"

//go:embed default/templates/*.html
var defaults embed.FS

// Manager discovers and loads themes.
type Manager struct {
	BaseDir string // e.g., "themes" (relative) or "/srv/themes" (absolute)
}

// Load parses templates for the given theme name.
// Template precedence (high → low):
//  1. <BaseDir>/<name>/templates/**.html (overrides)
//  2. embedded default templates
//
// A missing directory is an error for every theme except DefaultName.
func (m *Manager) Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}

	root, err := m.root(name)
	if err != nil {
		return nil, err
	}

	th := New(name, root, nil)
	tpl := template.New(name).Funcs(FuncMap(th.Asset))

	// 1. Embedded defaults (lowest precedence).
	if _, err := tpl.ParseFS(defaults, "default/templates/*.html"); err != nil {
		return nil, fmt.Errorf("parse embedded templates: %w", err)
	}

	// 2. Theme overrides (highest precedence).
	if root != "" {
		files, err := overrideFiles(filepath.Join(root, "templates"))
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", name, err)
		}
		if len(files) > 0 {
			if _, err := tpl.ParseFiles(files...); err != nil {
				return nil, fmt.Errorf("parse theme %s: %w", name, err)
			}
		}
	}

	th.Renderer = tpl
	return th, nil
}

// root returns the theme's override directory, or "" when the default
// theme has none on disk.
func (m *Manager) root(name string) (string, error) {
	if m.BaseDir != "" {
		dir := filepath.Join(m.BaseDir, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	if name == DefaultName {
		return "", nil
	}
	return "", fmt.Errorf("theme %s not found under %q", name, m.BaseDir)
}
