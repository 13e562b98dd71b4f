package pageset

import (
	"context"
	"encoding/json"

	"github.com/yanizio/pagepath/internal/document"
)

// Enrich returns a copy of doc carrying ps's routing configuration where
// doc has none of its own: __.pathInfo, and _pageset in its JSON-string
// wire form.  Values already on doc win.  doc is never modified.
func Enrich(doc document.Document, ps *PageSet) document.Document {
	out := doc.Clone()
	if out == nil {
		out = document.Document{}
	}
	if ps == nil {
		return out
	}

	bag := out.Object(document.KeyInternal)
	if bag == nil {
		bag = map[string]any{}
	}
	if _, ok := bag["pathInfo"]; !ok && ps.PathInfo != nil {
		p := *ps.PathInfo
		bag["pathInfo"] = &p
	}
	out[document.KeyInternal] = bag

	if !out.Has(document.KeyPageSet) && !out.Has(document.KeyPageSetConfig) &&
		(ps.Type != "" || !ps.URLTemplate.Empty()) {
		wire := struct {
			Type   document.PageSetType `json:"type,omitempty"`
			Config struct {
				URLTemplate *document.URLTemplates `json:"urlTemplate,omitempty"`
			} `json:"config"`
		}{Type: ps.Type}
		wire.Config.URLTemplate = ps.URLTemplate
		if b, err := json.Marshal(wire); err == nil {
			out[document.KeyPageSet] = string(b)
		}
	}
	return out
}

// Enrich loads pageSetID through the cache and applies it to doc.  An empty
// id returns doc unchanged.
func (c *Cache) Enrich(ctx context.Context, doc document.Document, pageSetID string) (document.Document, error) {
	if pageSetID == "" {
		return doc, nil
	}
	ps, err := c.Get(ctx, pageSetID)
	if err != nil {
		return nil, err
	}
	return Enrich(doc, ps), nil
}
