package urls

import (
	"fmt"
	"strings"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/locale"
	"github.com/yanizio/pagepath/internal/routing"
)

var entityChain = []strategy{
	{StrategyPathInfo, fromPathInfo(pathTemplate)},
	{StrategyPageSetTemplate, pageSetTemplate},
	{StrategyLocationPath, locationPath},
}

// ResolveEntity returns the URL of the page rendered for doc, prefixed with
// relativePrefixToRoot.  The input is never mutated.
func ResolveEntity(doc document.Document, relativePrefixToRoot string) (Resolution, error) {
	v := document.NewView(document.NormalizeLocales(doc))
	return run(ResolverEntity, entityChain, &request{view: v, prefix: relativePrefixToRoot})
}

// EntityURL is ResolveEntity without the strategy name.
func EntityURL(doc document.Document, relativePrefixToRoot string) (string, error) {
	r, err := ResolveEntity(doc, relativePrefixToRoot)
	return r.URL, err
}

// LocationPath derives a structural path from slug, address, or id.
func LocationPath(doc document.Document, relativePrefixToRoot string) (string, error) {
	v := document.NewView(document.NormalizeLocales(doc))
	return locationPath(&request{view: v, prefix: relativePrefixToRoot})
}

// locationPath prefers an explicit slug, verbatim.  Otherwise it builds
// "{locale/}{region}/{city}/{line1}" from the address, or "{locale/}{id}"
// when the address yields nothing.
func locationPath(r *request) (string, error) {
	v := r.view
	if slug := v.Doc.Slug(); slug != "" {
		return r.prefix + slug, nil
	}
	loc, err := locale.Require(v)
	if err != nil {
		return "", err
	}

	var raw string
	if addr := document.Document(v.Doc.Object("address")); addr != nil {
		raw = strings.Join([]string{
			addr.String("region"),
			addr.String("city"),
			addr.String("line1"),
		}, "/")
	}
	path := routing.NormalizeSlug(raw)
	if path == "" {
		path = routing.NormalizeSlug(v.Doc.ID())
	}
	if path == "" {
		return "", fmt.Errorf("%w: slug, address, or id", ErrMissingTemplateInput)
	}

	var seg string
	if locationPrefixed(v) {
		seg = loc
	}
	return r.prefix + routing.JoinPath(seg, path), nil
}

// locationPrefixed reports whether the structural path carries a locale
// segment.  Alternate locales always do; the primary locale only under the
// page-set level switch.  pathInfo's include switch does not apply here.
func locationPrefixed(v *document.View) bool {
	if !locale.IsPrimaryLocation(v) {
		return true
	}
	return v.PageSet != nil && v.PageSet.IncludeLocalePrefixForPrimaryLocale
}
