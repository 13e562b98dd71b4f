package interp

import (
	"reflect"
	"testing"

	"github.com/yanizio/pagepath/internal/document"
)

func TestResolve(t *testing.T) {
	doc := document.Document{
		"id":     123.0,
		"locale": "es",
		"address": map[string]any{
			"region": "NY",
			"city":   "New York",
			"line1":  "61 9th Ave",
		},
		"c_title": map[string]any{"en": "Hello", "es": "Hola"},
		"c_open":  true,
		"c_list":  []any{"x"},
	}

	cases := []struct {
		name, tmpl, locale, want string
	}{
		{"no tokens", "stores/index.html", "es", "stores/index.html"},
		{"address", "[[address.region]]/[[address.city]]/[[address.line1]]", "es", "NY/New York/61 9th Ave"},
		{"number", "stores/[[id]]", "es", "stores/123"},
		{"missing field", "stores/[[nope.deeper]]/x", "es", "stores//x"},
		{"localized", "[[c_title]]", "es", "Hola"},
		{"localized base language", "[[c_title]]", "en-gb", "Hello"},
		{"localized missing locale", "[[c_title]]", "fr", ""},
		{"bool", "[[c_open]]", "es", "true"},
		{"array is not scalar", "[[c_list]]", "es", ""},
		{"array index", "[[c_list.0]]", "es", "x"},
		{"spaces inside token", "[[ locale ]]/x", "es", "es/x"},
		{"unmatched brackets pass through", "a[[b/[c]]d]]", "es", "a[[b/[c]]d]]"},
		{"single brackets pass through", "[id]", "es", "[id]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.tmpl, doc, tc.locale); got != tc.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tc.tmpl, got, tc.want)
			}
		})
	}
}

func TestResolve_NilDocument(t *testing.T) {
	if got := Resolve("a/[[id]]", nil, "en"); got != "a/" {
		t.Fatalf("Resolve on nil doc = %q", got)
	}
}

func TestFields(t *testing.T) {
	got := Fields("[[locale]]/[[address.region]]/x/[[id]]")
	want := []string{"locale", "address.region", "id"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Fields = %v, want %v", got, want)
	}
}
