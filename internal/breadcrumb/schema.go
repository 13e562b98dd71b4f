package breadcrumb

import (
	"github.com/yanizio/pagepath/internal/document"
)

const levelRoot = "dm_root"

// ListItem is one schema.org ListItem.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     Thing  `json:"item"`
}

// Thing is the linked item of a ListItem.
type Thing struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
}

// BreadcrumbList is the schema.org JSON-LD block for a trail.
type BreadcrumbList struct {
	Type            string     `json:"@type"`
	Context         string     `json:"@context"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// Schema renders crumbs as a BreadcrumbList.  Ancestors link to
// relativePrefixToRoot + slug, the current page to pageID.  A trail without
// ancestors yields nil, except on a directory root, which gets a single
// item for itself.
func Schema(doc document.Document, crumbs []document.BreadcrumbLink, relativePrefixToRoot, pageID string) *BreadcrumbList {
	var items []ListItem
	add := func(name, id string) {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: len(items) + 1,
			Name:     name,
			Item:     Thing{ID: id, Type: "Thing"},
		})
	}

	for _, c := range crumbs {
		if c.Slug != "" {
			add(c.Name, relativePrefixToRoot+c.Slug)
		}
	}

	if len(items) == 0 {
		if doc.String("meta.entityType.id") != levelRoot {
			return nil
		}
		add(doc.Name(), pageID)
	} else if name := doc.Name(); name != "" {
		add(name, pageID)
	}

	return &BreadcrumbList{
		Type:            "BreadcrumbList",
		Context:         "https://schema.org",
		ItemListElement: items,
	}
}
