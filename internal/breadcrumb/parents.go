package breadcrumb

import (
	"sort"
	"strings"

	"github.com/yanizio/pagepath/internal/document"
)

// DirectoryParents returns the first well-formed dm_directoryParents_* list
// on doc, keys taken in lexical order.  A list is well-formed when every
// element is an object with string name and slug.  No match yields nil.
func DirectoryParents(doc document.Document) []document.BreadcrumbLink {
	keys := make([]string, 0, 1)
	for k := range doc {
		if strings.HasPrefix(k, document.ParentsKeyPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if links, ok := parentList(doc[k]); ok {
			return links
		}
	}
	return nil
}

func parentList(raw any) ([]document.BreadcrumbLink, bool) {
	switch t := raw.(type) {
	case []document.BreadcrumbLink:
		return t, true
	case []any:
		out := make([]document.BreadcrumbLink, 0, len(t))
		for _, e := range t {
			var m map[string]any
			switch obj := e.(type) {
			case map[string]any:
				m = obj
			case document.Document:
				m = obj
			default:
				return nil, false
			}
			name, okName := m["name"].(string)
			slug, okSlug := m["slug"].(string)
			if !okName || !okSlug {
				return nil, false
			}
			out = append(out, document.BreadcrumbLink{Name: name, Slug: slug})
		}
		return out, true
	}
	return nil, false
}
