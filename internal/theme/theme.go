// Package theme loads the template sets used to render entity pages.
//
// A Theme combines:
//
//   - Name      – the theme name (for example, “default”).
//   - Root      – the override directory on disk, empty when only the
//     embedded default templates are in play.
//   - Renderer  – parsed templates ready for execution.  Every theme
//     defines "page", "breadcrumbs", and "listing".
//
// Templates resolve static files with `{{ asset "css/main.css" }}`, which
// yields `/themes/<name>/assets/css/main.css`.
package theme

import (
	"html/template"
	"path"
	"strings"
)

// Theme is returned by the Manager once all templates are parsed.
type Theme struct {
	Name     string
	Root     string
	Renderer *template.Template

	assetPrefix string
}

// New wraps a parsed template set.
func New(name, root string, tpl *template.Template) *Theme {
	return &Theme{
		Name:        name,
		Root:        root,
		Renderer:    tpl,
		assetPrefix: path.Join("/themes", name, "assets") + "/",
	}
}

// Asset maps a theme-relative asset path to its public URL.
func (t *Theme) Asset(p string) string {
	return t.assetPrefix + strings.TrimPrefix(p, "/")
}

// Has reports whether the set defines the named template.
func (t *Theme) Has(name string) bool {
	return t.Renderer != nil && t.Renderer.Lookup(name) != nil
}
