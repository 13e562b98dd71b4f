// internal/view/render.go
//
// Central view engine: theme lookup, an LRU of parsed theme sets, and
// execution of the "page" template.
//
// Public helpers
// --------------
//   - Render         – write rendered HTML to any io.Writer.
//   - RenderToString – return template.HTML (CLI, tests).
//
// Lookup precedence (first hit wins) is owned by theme.Manager:
//  1. <themeDir>/<theme>/templates/*.html
//  2. embedded default templates
//
// Style
// -----
// • Oxford commas, two spaces after periods.

package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/cache"
	"github.com/yanizio/pagepath/internal/theme"
)

// PageTemplate is the root template every theme must define.
const PageTemplate = "page"

// CachePolicy hints how the caller wants the theme set cached.
type CachePolicy int

const (
	CacheDefault CachePolicy = iota // reuse a parsed set when present
	CacheSkip                       // re-parse, never store (theme development)
)

// Engine renders pages with one configured theme.
type Engine struct {
	themes *theme.Manager
	name   string
	policy CachePolicy
	sets   *cache.LRU[string, *theme.Theme]
}

// NewEngine returns an Engine for themeName.  capacity bounds the number of
// parsed theme sets kept in memory.
func NewEngine(m *theme.Manager, themeName string, capacity int, policy CachePolicy) *Engine {
	if capacity <= 0 {
		capacity = 16
	}
	if themeName == "" {
		themeName = theme.DefaultName
	}
	sets := cache.New[string, *theme.Theme](capacity)
	sets.OnEvict = func(name string, _ *theme.Theme) {
		zap.L().Debug("theme set evicted", zap.String("theme", name))
	}
	return &Engine{themes: m, name: themeName, policy: policy, sets: sets}
}

// Render executes the page template and streams it to w.
func (e *Engine) Render(w io.Writer, p *Page) error {
	th, err := e.load()
	if err != nil {
		return err
	}
	if err := th.Renderer.ExecuteTemplate(w, PageTemplate, p); err != nil {
		return fmt.Errorf("render %s: %w", th.Name, err)
	}
	return nil
}

// RenderToString mirrors Render, but writes to a buffer.
func (e *Engine) RenderToString(p *Page) (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.Render(&buf, p); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

//
// internal: load
//

func (e *Engine) load() (*theme.Theme, error) {
	if e.policy != CacheSkip {
		if th, ok := e.sets.Get(e.name); ok {
			return th, nil
		}
	}
	th, err := e.themes.Load(e.name)
	if err != nil {
		return nil, err
	}
	if !th.Has(PageTemplate) {
		return nil, fmt.Errorf("theme %s: template %q not defined", th.Name, PageTemplate)
	}
	zap.L().Debug("theme parsed", zap.String("theme", th.Name), zap.String("root", th.Root))
	if e.policy != CacheSkip {
		e.sets.Add(e.name, th)
	}
	return th, nil
}
