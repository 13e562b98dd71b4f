// internal/view/page.go
//
// Page assembly: one entity document in, one render-ready Page out.
//
// Workflow
// --------
//  1. Resolve the canonical URL through urls.ResolveEntity.
//  2. Resolve the breadcrumb trail and its BreadcrumbList JSON-LD block.
//  3. Build the directory listing from dm_directoryChildren.
//  4. Push title, canonical link, and JSON-LD into a fresh head.Builder.
//
// Notes
// -----
//   - A document whose URL chain is exhausted still renders.  The failure
//     is logged and the canonical link is omitted.
//   - Oxford commas, two spaces after periods.
package view

import (
	"errors"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/breadcrumb"
	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/head"
	"github.com/yanizio/pagepath/internal/urls"
)

// PageInput is everything Build needs for one page.
type PageInput struct {
	Doc                  document.Document
	RelativePrefixToRoot string
	PageID               string
}

// Crumb is a breadcrumb ready for the template.  Current marks the leaf.
type Crumb struct {
	Name    string `json:"name"`
	Href    string `json:"href,omitempty"`
	Current bool   `json:"current,omitempty"`
}

// Page is the template data for the "page" template.
type Page struct {
	Head               *head.Builder   `json:"-"`
	Title              string          `json:"title"`
	Locale             string          `json:"locale"`
	URL                string          `json:"url,omitempty"`
	URLStrategy        string          `json:"urlStrategy,omitempty"`
	Breadcrumbs        []Crumb         `json:"breadcrumbs"`
	BreadcrumbStrategy string          `json:"breadcrumbStrategy"`
	Listing            []urls.ListLink `json:"listing,omitempty"`
}

// Build assembles a Page.  It never fails; per-concern failures degrade the
// page and are logged.
func Build(in PageInput) *Page {
	doc := in.Doc
	p := &Page{
		Head:   head.New(),
		Title:  doc.Name(),
		Locale: document.NormalizeLocale(doc.Locale()),
	}
	if p.Title == "" {
		p.Title = doc.ID()
	}
	p.Head.SetTitle(p.Title)

	res, err := urls.ResolveEntity(doc, in.RelativePrefixToRoot)
	switch {
	case err == nil:
		p.URL, p.URLStrategy = res.URL, res.Strategy
		p.Head.SetCanonical(res.URL)
	case errors.Is(err, urls.ErrResolutionExhausted):
		zap.L().Warn("page rendered without canonical URL",
			zap.String("id", doc.ID()), zap.Error(err))
	default:
		zap.L().Error("entity URL", zap.String("id", doc.ID()), zap.Error(err))
	}

	trail := breadcrumb.ResolveWith(doc, breadcrumb.Options{})
	p.BreadcrumbStrategy = trail.Strategy
	p.Breadcrumbs = crumbs(trail.Links, in.RelativePrefixToRoot)
	if ld := breadcrumb.Schema(doc, trail.Links, in.RelativePrefixToRoot, in.PageID); ld != nil {
		if err := p.Head.JSONLDValue(ld); err != nil {
			zap.L().Error("breadcrumb JSON-LD", zap.String("id", doc.ID()), zap.Error(err))
		}
	}

	p.Listing = urls.DirectoryListing(doc, in.RelativePrefixToRoot)
	return p
}

// crumbs maps links to template crumbs.  Ancestor hrefs are prefixed with
// relativePrefixToRoot; the leaf keeps an empty href.
func crumbs(links []document.BreadcrumbLink, prefix string) []Crumb {
	out := make([]Crumb, 0, len(links))
	for _, l := range links {
		if l.Slug == "" {
			out = append(out, Crumb{Name: l.Name, Current: true})
			continue
		}
		out = append(out, Crumb{Name: l.Name, Href: prefix + l.Slug})
	}
	return out
}
