// Package interp substitutes embedded field references in template strings.
//
// A token has the form [[dotted.field.path]].  Each token is replaced with
// the document value at that path, read through a localized wrapper when the
// value is an object keyed by locale ({"en": "Hi", "es": "Hola"}).  Missing
// or non-scalar values resolve to the empty string.  Text outside tokens,
// including brackets that do not form a token, passes through unchanged.
package interp

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/yanizio/pagepath/internal/document"
)

var tokenRE = regexp.MustCompile(`\[\[\s*([A-Za-z0-9_\-]+(?:\.[A-Za-z0-9_\-]+)*)\s*\]\]`)

// Resolve returns tmpl with every token replaced.  It never fails.
func Resolve(tmpl string, doc document.Document, locale string) string {
	if !strings.Contains(tmpl, "[[") {
		return tmpl
	}
	return tokenRE.ReplaceAllStringFunc(tmpl, func(tok string) string {
		m := tokenRE.FindStringSubmatch(tok)
		if len(m) < 2 {
			return ""
		}
		v, ok := doc.Lookup(m[1])
		if !ok {
			return ""
		}
		return render(v, locale)
	})
}

// Fields lists the field paths referenced by tmpl, in order of appearance.
func Fields(tmpl string) []string {
	matches := tokenRE.FindAllStringSubmatch(tmpl, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

func render(v any, locale string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	case map[string]any:
		return localized(t, locale)
	case document.Document:
		return localized(t, locale)
	}
	return ""
}

// localized unwraps a translatable value.  The exact locale wins, then its
// base language ("es" for "es-mx").
func localized(m map[string]any, locale string) string {
	if locale == "" {
		return ""
	}
	if v, ok := m[locale]; ok {
		return render(v, "")
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		if v, ok := m[base]; ok {
			return render(v, "")
		}
	}
	return ""
}
