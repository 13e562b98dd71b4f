// internal/document/view.go
//
// Boundary decoding of side channels.
//
// Context
// -------
// Several generations of configuration travel on the same document: a
// structured or JSON-string pathInfo, a JSON-string page-set config, legacy
// entityPageSetUrlTemplates, a deprecated isPrimaryLocale flag, and the
// locator's source page sets.  NewView decodes all of them exactly once so
// strategies never repeat parse logic.  A side channel that fails to decode
// is recorded as an error on the View; strategies that depend on it treat it
// as inapplicable.
//
// Notes
// -----
// • locatorSourcePageSets keeps JSON key order when it arrives as a string.
//   A structured object has no order left, so its keys are sorted.
// • Oxford commas, two spaces after periods.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// View is a Document plus its decoded side channels.  Build with NewView.
type View struct {
	Doc Document

	PathInfo    *PathInfo
	PathInfoErr error

	PageSet    *PageSetConfig
	PageSetErr error

	EntityTemplates    *URLTemplates
	EntityTemplatesErr error

	// IsPrimaryLocale is the deprecated root flag; nil when unset.
	IsPrimaryLocale *bool

	SourcePageSets    []SourcePageSet
	SourcePageSetsErr error
}

// NewView decodes every side channel on d.  d itself is not copied; callers
// that need isolation pass a clone.
func NewView(d Document) *View {
	v := &View{Doc: d}
	bag := d.Object(KeyInternal)

	v.PathInfo, v.PathInfoErr = DecodePathInfo(bag["pathInfo"])
	v.EntityTemplates, v.EntityTemplatesErr = DecodeURLTemplates(bag["entityPageSetUrlTemplates"])
	if b, ok := bag["isPrimaryLocale"].(bool); ok {
		v.IsPrimaryLocale = &b
	}
	v.SourcePageSets, v.SourcePageSetsErr = decodeSourcePageSets(bag["locatorSourcePageSets"])

	raw, ok := d[KeyPageSet]
	if !ok {
		raw = d[KeyPageSetConfig]
	}
	v.PageSet, v.PageSetErr = decodePageSet(raw)
	return v
}

// Locale is the resolved locale of the underlying document.
func (v *View) Locale() string { return v.Doc.Locale() }

// WithPathInfo returns a shallow copy of v whose PathInfo is replaced.
func (v *View) WithPathInfo(p *PathInfo) *View {
	cp := *v
	cp.PathInfo = p
	cp.PathInfoErr = nil
	return &cp
}

//
// decoders
//

// DecodePathInfo accepts a *PathInfo, a PathInfo, a structured object, or a
// JSON string.  nil input yields (nil, nil).
func DecodePathInfo(raw any) (*PathInfo, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case *PathInfo:
		return t, nil
	case PathInfo:
		return &t, nil
	case string:
		if s := strings.TrimSpace(t); s == "" || s == "null" {
			return nil, nil
		}
	}
	var p PathInfo
	if err := decodeInto(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: pathInfo: %v", ErrMalformedConfig, err)
	}
	return &p, nil
}

// DecodeURLTemplates accepts a JSON string or a structured
// {primary, alternate} object.
func DecodeURLTemplates(raw any) (*URLTemplates, error) {
	if raw == nil {
		return nil, nil
	}
	var u URLTemplates
	if err := decodeInto(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: entityPageSetUrlTemplates: %v", ErrMalformedConfig, err)
	}
	return &u, nil
}

// pageSetWire mirrors both observed shapes: urlTemplate nested under config
// and urlTemplate at the top level.
type pageSetWire struct {
	Type        PageSetType   `json:"type"`
	URLTemplate *URLTemplates `json:"urlTemplate"`
	Config      struct {
		URLTemplate                         *URLTemplates `json:"urlTemplate"`
		PrimaryLocale                       string        `json:"primaryLocale"`
		IncludeLocalePrefixForPrimaryLocale bool          `json:"includeLocalePrefixForPrimaryLocale"`
	} `json:"config"`
}

func decodePageSet(raw any) (*PageSetConfig, error) {
	if raw == nil {
		return nil, nil
	}
	if p, ok := raw.(*PageSetConfig); ok {
		return p, nil
	}
	var w pageSetWire
	if err := decodeInto(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: pageSetConfig: %v", ErrMalformedConfig, err)
	}
	cfg := &PageSetConfig{
		Type:                                w.Type,
		URLTemplate:                         w.Config.URLTemplate,
		PrimaryLocale:                       w.Config.PrimaryLocale,
		IncludeLocalePrefixForPrimaryLocale: w.Config.IncludeLocalePrefixForPrimaryLocale,
	}
	if cfg.URLTemplate.Empty() {
		cfg.URLTemplate = w.URLTemplate
	}
	return cfg, nil
}

type sourcePageSetWire struct {
	EntityType            string          `json:"entityType"`
	InternalSavedFilterID any             `json:"internalSavedFilterId"`
	PathInfo              json.RawMessage `json:"pathInfo"`
}

func decodeSourcePageSets(raw any) ([]SourcePageSet, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case []SourcePageSet:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, nil
		}
		out, err := decodeOrderedSourcePageSets([]byte(t))
		if err != nil {
			return nil, fmt.Errorf("%w: locatorSourcePageSets: %v", ErrMalformedConfig, err)
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]SourcePageSet, 0, len(keys))
		for _, k := range keys {
			var w sourcePageSetWire
			if err := decodeInto(t[k], &w); err != nil {
				return nil, fmt.Errorf("%w: locatorSourcePageSets[%s]: %v", ErrMalformedConfig, k, err)
			}
			entry, err := w.build(k)
			if err != nil {
				return nil, err
			}
			out = append(out, entry)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: locatorSourcePageSets has type %T", ErrMalformedConfig, raw)
}

// decodeOrderedSourcePageSets walks the top-level object token by token so
// that entry order matches the JSON text.
func decodeOrderedSourcePageSets(data []byte) ([]SourcePageSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var out []SourcePageSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var w sourcePageSetWire
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		entry, err := w.build(key)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func (w sourcePageSetWire) build(id string) (SourcePageSet, error) {
	entry := SourcePageSet{
		ID:                    id,
		EntityType:            w.EntityType,
		InternalSavedFilterID: Scalar(w.InternalSavedFilterID),
	}
	if len(w.PathInfo) > 0 && string(w.PathInfo) != "null" {
		var p PathInfo
		if err := json.Unmarshal(w.PathInfo, &p); err != nil {
			return SourcePageSet{}, fmt.Errorf("%w: locatorSourcePageSets[%s].pathInfo: %v",
				ErrMalformedConfig, id, err)
		}
		entry.PathInfo = &p
	}
	return entry, nil
}

// decodeInto parses a JSON string, or round-trips an already-decoded value,
// into dst.
func decodeInto(raw any, dst any) error {
	var data []byte
	switch t := raw.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		data = []byte(t)
	case []byte:
		data = t
	case json.RawMessage:
		data = t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return err
		}
		data = b
	}
	return json.Unmarshal(data, dst)
}
