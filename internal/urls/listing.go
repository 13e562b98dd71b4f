package urls

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yanizio/pagepath/internal/document"
	"github.com/yanizio/pagepath/internal/locale"
	"github.com/yanizio/pagepath/internal/routing"
)

// ListChildLink builds the href of a child listed on a directory page.
// Without pathInfo on doc the child's slug is returned unchanged.  With
// pathInfo the result is "[locale/][breadcrumbPrefix/]slug".  ok is false
// when child.slug is not a string.
func ListChildLink(doc, child document.Document) (string, bool) {
	v := document.NewView(document.NormalizeLocales(doc))
	return listChildLink(v, child)
}

func listChildLink(v *document.View, child document.Document) (string, bool) {
	slug, ok := child["slug"].(string)
	if !ok {
		return "", false
	}
	if v.PathInfo == nil {
		return slug, true
	}
	var seg string
	if locale.ShouldPrefix(v) {
		seg = v.Locale()
	}
	return routing.JoinPath(seg, routing.NormalizeSlug(v.PathInfo.BreadcrumbPrefix), slug), true
}

// ListLink is one entry of a directory listing.
type ListLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Directory levels, read from meta.entityType.id.
const (
	LevelRoot    = "dm_root"
	LevelCountry = "dm_country"
)

// DirectoryListing turns dm_directoryChildren into labelled links, sorted
// by name with the page locale's collation.  A child without a string slug
// keeps its label and gets an empty Href.
func DirectoryListing(doc document.Document, relativePrefixToRoot string) []ListLink {
	children, _ := doc[document.KeyDirectoryChildren].([]any)
	if len(children) == 0 {
		return nil
	}
	v := document.NewView(document.NormalizeLocales(doc))
	level := doc.String("meta.entityType.id")

	kids := make([]document.Document, 0, len(children))
	for _, c := range children {
		switch t := c.(type) {
		case map[string]any:
			kids = append(kids, t)
		case document.Document:
			kids = append(kids, t)
		}
	}

	tag, err := language.Parse(v.Locale())
	if err != nil {
		tag = language.English
	}
	col := collate.New(tag, collate.IgnoreCase)
	sort.SliceStable(kids, func(i, j int) bool {
		return col.CompareString(kids[i].Name(), kids[j].Name()) < 0
	})

	out := make([]ListLink, 0, len(kids))
	for _, child := range kids {
		link := ListLink{Label: childLabel(level, child)}
		if href, ok := listChildLink(v, child); ok {
			link.Href = relativePrefixToRoot + href
		}
		out = append(out, link)
	}
	return out
}

// childLabel picks the display field for the directory level: countries
// under the root, regions under a country, names elsewhere.  A display
// field that is present but empty stays empty.
func childLabel(level string, child document.Document) string {
	var key string
	switch level {
	case LevelRoot:
		key = "dm_addressCountryDisplayName"
	case LevelCountry:
		key = "dm_addressRegionDisplayName"
	}
	if key != "" {
		if label, ok := child[key].(string); ok {
			return label
		}
	}
	return child.Name()
}
