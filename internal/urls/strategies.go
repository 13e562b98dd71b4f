package urls

import (
	"fmt"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/interp"
	"github.com/yanizio/pagepath/internal/locale"
	"github.com/yanizio/pagepath/internal/routing"
)

// fromPathInfo builds the path-info strategy for the template selected by
// pick (pathInfo.template for pages, sourceEntityPageSetTemplate for
// children).
func fromPathInfo(pick func(*document.PathInfo) string) func(*request) (string, error) {
	return func(r *request) (string, error) {
		v := r.view
		if v.PathInfoErr != nil {
			return "", v.PathInfoErr
		}
		if v.PathInfo == nil {
			return "", fmt.Errorf("%w: pathInfo", ErrMissingTemplateInput)
		}
		tmpl := pick(v.PathInfo)
		if tmpl == "" {
			return "", fmt.Errorf("%w: pathInfo template", ErrMissingTemplateInput)
		}
		loc, err := locale.Require(v)
		if err != nil {
			return "", err
		}

		slug := routing.NormalizeSlug(interp.Resolve(tmpl, v.Doc, loc))
		if slug == "" {
			return "", nil
		}

		var seg string
		if locale.ShouldPrefix(v) {
			seg = loc
		}
		return r.prefix + routing.JoinPath(seg, slug), nil
	}
}

func pathTemplate(p *document.PathInfo) string       { return p.Template }
func sourceEntityTemplate(p *document.PathInfo) string { return p.SourceEntityPageSetTemplate }

// pageSetTemplate resolves the current page set's primary or alternate
// URL template.  Listing page sets (DIRECTORY, LOCATOR) never apply.
func pageSetTemplate(r *request) (string, error) {
	v := r.view
	if v.PageSetErr != nil {
		return "", v.PageSetErr
	}
	if v.PageSet == nil || v.PageSet.URLTemplate.Empty() {
		return "", fmt.Errorf("%w: pageSetConfig.urlTemplate", ErrMissingTemplateInput)
	}
	if !v.PageSet.UsesEntityTemplates() {
		return "", fmt.Errorf("%w: %s page set has no entity template",
			ErrMissingTemplateInput, v.PageSet.Type)
	}
	loc, err := locale.Require(v)
	if err != nil {
		return "", err
	}
	tmpl := v.PageSet.URLTemplate.Select(locale.IsPrimary(v))
	return buildFromTemplate(tmpl, v, loc, r.prefix), nil
}

// legacyChildTemplate resolves entityPageSetUrlTemplates against the merged
// child document.  Primary versus alternate follows the merged
// isPrimaryLocale flag.  With no template at all it falls back to the
// structural location path.
func legacyChildTemplate(r *request) (string, error) {
	v := r.view
	if v.EntityTemplatesErr != nil {
		return "", v.EntityTemplatesErr
	}
	loc, err := locale.Require(v)
	if err != nil {
		return "", err
	}
	if v.EntityTemplates.Empty() {
		return locationPath(r)
	}
	primary := v.IsPrimaryLocale == nil || *v.IsPrimaryLocale
	return buildFromTemplate(v.EntityTemplates.Select(primary), v, loc, r.prefix), nil
}

// buildFromTemplate interpolates, normalizes, and prefixes.  An empty slug
// yields "" so the chain moves on.
func buildFromTemplate(tmpl string, v *document.View, loc, prefix string) string {
	slug := routing.CollapseSlashes(routing.NormalizeSlug(interp.Resolve(tmpl, v.Doc, loc)))
	if slug == "" {
		return ""
	}
	return prefix + slug
}
