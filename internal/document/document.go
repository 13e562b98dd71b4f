// internal/document/document.go
//
// Open-ended entity document.
//
// Context
// -------
// A Document is one content entity exactly as the upstream platform hands
// it to us: a JSON object with a handful of well-known fields (id, name,
// slug, locale, address, meta) plus two side channels, the internal bag
// under “__” and the page-set config under “_pageset”.  Resolvers never
// mutate a Document; every transformation (locale normalization, child
// merge) returns a deep copy.
//
// Notes
// -----
// • Lookup walks dotted paths through nested objects and arrays.
// • Oxford commas, two spaces after periods.
package document

import (
	"strconv"
	"strings"
)

// Well-known keys.
const (
	KeyInternal          = "__"
	KeyPageSet           = "_pageset"
	KeyPageSetConfig     = "pageSetConfig"
	KeyDirectoryChildren = "dm_directoryChildren"
	ParentsKeyPrefix     = "dm_directoryParents_"
)

// Document is one entity record.  Zero value (nil) is a valid empty document.
type Document map[string]any

// Lookup resolves a dotted path such as "address.city" or "photos.0.url".
// The second result is false when any segment is missing.
func (d Document) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = map[string]any(d)
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case Document:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at path, or "" when absent or not a string.
func (d Document) String(path string) string {
	v, ok := d.Lookup(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Object returns the nested object at key, or nil.
func (d Document) Object(key string) map[string]any {
	return asObject(d[key])
}

// ID, Name, and Slug are the string forms of the matching fields.
func (d Document) ID() string   { return Scalar(d["id"]) }
func (d Document) Name() string { return d.String("name") }
func (d Document) Slug() string { return d.String("slug") }

// Locale returns document.locale, then meta.locale, then "".
func (d Document) Locale() string {
	if l := d.String("locale"); l != "" {
		return l
	}
	return d.String("meta.locale")
}

// Has reports whether key is present and non-nil.
func (d Document) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// Clone returns a deep copy of the JSON-shaped parts of d.  Opaque values
// (typed structs, pointers) are shared because nothing mutates them.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(d))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Document:
		return Document(cloneMap(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func asObject(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return t
	case Document:
		return t
	}
	return nil
}

// Scalar renders strings and JSON numbers; everything else is "".
func Scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case interface{ String() string }: // json.Number
		return t.String()
	}
	return ""
}
