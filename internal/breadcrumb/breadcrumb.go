// internal/breadcrumb/breadcrumb.go
//
// Ancestor trails for a page.
//
// Context
// -------
// Two strategies, tried in order, first non-empty trail wins:
//
//   1. path_info: every pathInfo.breadcrumbTemplates entry encodes the full
//      path from the site root to one ancestor.  Each is resolved on its own
//      and gets the same "[locale/][breadcrumbPrefix/]" treatment.
//   2. directory_parents: already-resolved {name, slug} parents supplied by
//      the directory crawler under a dm_directoryParents_* key.
//
// Both strategies append the current page as a leaf crumb with an empty
// slug and drop crumbs without a name.  When neither yields anything the
// trail is empty; breadcrumbs never fail a page.
//
// Notes
// -----
// • Templates are expected to produce locale-free paths.  The resolver owns
//   every locale-prefix decision.
// • Oxford commas, two spaces after periods.
package breadcrumb

import (
	"strings"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/interp"
	"github.com/yanizio/pagepath/internal/locale"
	"github.com/yanizio/pagepath/internal/routing"
)

// Strategy names reported in Trail.Strategy.
const (
	StrategyPathInfo         = "path_info"
	StrategyDirectoryParents = "directory_parents"
	StrategyNone             = "none"
)

// ParentSource supplies pre-resolved directory parents for a document.
type ParentSource func(document.Document) []document.BreadcrumbLink

// Options tunes ResolveWith.  A nil Parents reads dm_directoryParents_*.
type Options struct {
	Parents ParentSource
}

// Trail is a resolved breadcrumb list plus the strategy that produced it.
type Trail struct {
	Links    []document.BreadcrumbLink `json:"breadcrumbs"`
	Strategy string                    `json:"strategy"`
}

// Resolve returns the breadcrumb trail for doc, or an empty slice.
func Resolve(doc document.Document) []document.BreadcrumbLink {
	return ResolveWith(doc, Options{}).Links
}

// ResolveWith is Resolve with a pluggable parent source.
func ResolveWith(doc document.Document, opts Options) Trail {
	if opts.Parents == nil {
		opts.Parents = DirectoryParents
	}
	v := document.NewView(document.NormalizeLocales(doc))

	if links := fromPathInfo(v); len(links) > 0 {
		return Trail{Links: links, Strategy: StrategyPathInfo}
	}
	if links := fromParents(v, opts.Parents(doc)); len(links) > 0 {
		return Trail{Links: links, Strategy: StrategyDirectoryParents}
	}
	return Trail{Links: []document.BreadcrumbLink{}, Strategy: StrategyNone}
}

func fromPathInfo(v *document.View) []document.BreadcrumbLink {
	if v.PathInfoErr != nil {
		zap.L().Debug("breadcrumb pathInfo unreadable",
			zap.String("id", v.Doc.ID()), zap.Error(v.PathInfoErr))
		return nil
	}
	if v.PathInfo == nil || len(v.PathInfo.BreadcrumbTemplates) == 0 {
		return nil
	}
	loc, err := locale.Require(v)
	if err != nil {
		zap.L().Debug("breadcrumb templates skipped", zap.Error(err))
		return nil
	}

	prefix := crumbPrefix(v)
	var links []document.BreadcrumbLink
	for _, tmpl := range v.PathInfo.BreadcrumbTemplates {
		raw := routing.CollapseSlashes(interp.Resolve(tmpl, v.Doc, loc))
		slug := routing.CollapseSlashes(routing.NormalizeSlug(raw))
		if slug == "" {
			continue
		}
		name := lastSegment(raw)
		if name == "" {
			name = v.Doc.Name()
		}
		if name == "" {
			name = slug
		}
		links = append(links, document.BreadcrumbLink{
			Name: name,
			Slug: routing.JoinPath(prefix, slug),
		})
	}
	if len(links) == 0 {
		return nil
	}
	return withLeaf(links, v.Doc)
}

// fromParents decorates supplied parents.  With pathInfo present each slug
// gets the same prefix as list children; without it slugs pass through.
func fromParents(v *document.View, parents []document.BreadcrumbLink) []document.BreadcrumbLink {
	if len(parents) == 0 && !v.Doc.Has(document.KeyDirectoryChildren) {
		return nil
	}
	var prefix string
	if v.PathInfo != nil {
		prefix = crumbPrefix(v)
	}
	links := make([]document.BreadcrumbLink, 0, len(parents)+1)
	for _, p := range parents {
		links = append(links, document.BreadcrumbLink{
			Name: p.Name,
			Slug: routing.JoinPath(prefix, p.Slug),
		})
	}
	return withLeaf(links, v.Doc)
}

// crumbPrefix is "[locale/][breadcrumbPrefix]" for v.
func crumbPrefix(v *document.View) string {
	var seg string
	if locale.ShouldPrefix(v) {
		seg = v.Locale()
	}
	var bp string
	if v.PathInfo != nil {
		bp = routing.NormalizeSlug(v.PathInfo.BreadcrumbPrefix)
	}
	return routing.JoinPath(seg, bp)
}

// withLeaf appends the current page and drops nameless crumbs.  nil when
// nothing survives.
func withLeaf(links []document.BreadcrumbLink, doc document.Document) []document.BreadcrumbLink {
	links = append(links, document.BreadcrumbLink{Name: doc.Name(), Slug: ""})
	out := links[:0]
	for _, l := range links {
		if l.Name != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func lastSegment(p string) string {
	parts := strings.Split(p, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(parts[i]); s != "" {
			return s
		}
	}
	return ""
}
