package document

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

// decode builds a Document from JSON text the way the HTTP layer does.
func decode(t *testing.T, s string) Document {
	t.Helper()
	var d Document
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return d
}

func TestLookup(t *testing.T) {
	d := decode(t, `{
		"id": 123,
		"address": {"city": "New York"},
		"photos": [{"url": "a.png"}, {"url": "b.png"}]
	}`)

	cases := []struct {
		path string
		want any
		ok   bool
	}{
		{"address.city", "New York", true},
		{"photos.1.url", "b.png", true},
		{"photos.7.url", nil, false},
		{"address.region", nil, false},
		{"address.city.more", nil, false},
		{"", nil, false},
	}
	for _, tc := range cases {
		got, ok := d.Lookup(tc.path)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Lookup(%q) = %v, %v; want %v, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
	if d.ID() != "123" {
		t.Fatalf("ID() = %q, want 123", d.ID())
	}
}

func TestLocaleFallsBackToMeta(t *testing.T) {
	d := decode(t, `{"meta": {"locale": "fr"}}`)
	if got := d.Locale(); got != "fr" {
		t.Fatalf("Locale() = %q, want fr", got)
	}
	if got := (Document{}).Locale(); got != "" {
		t.Fatalf("empty Locale() = %q", got)
	}
}

func TestClone_IsDeep(t *testing.T) {
	d := decode(t, `{"address": {"city": "A"}, "list": [{"x": 1}]}`)
	c := d.Clone()
	c.Object("address")["city"] = "B"
	c["list"].([]any)[0].(map[string]any)["x"] = 2.0

	if d.String("address.city") != "A" {
		t.Fatalf("clone shares nested object")
	}
	if v, _ := d.Lookup("list.0.x"); v != 1.0 {
		t.Fatalf("clone shares nested array: %v", v)
	}
}

func TestNewView_PathInfoShapes(t *testing.T) {
	structured := decode(t, `{"__": {"pathInfo": {"template": "stores/[[id]]", "primaryLocale": "en"}}}`)
	encoded := decode(t, `{"__": {"pathInfo": "{\"template\":\"stores/[[id]]\",\"primaryLocale\":\"en\"}"}}`)

	for name, d := range map[string]Document{"structured": structured, "encoded": encoded} {
		v := NewView(d)
		if v.PathInfoErr != nil {
			t.Fatalf("%s: unexpected error %v", name, v.PathInfoErr)
		}
		if v.PathInfo == nil || v.PathInfo.Template != "stores/[[id]]" || v.PathInfo.PrimaryLocale != "en" {
			t.Fatalf("%s: PathInfo = %+v", name, v.PathInfo)
		}
	}
}

func TestNewView_MalformedSideChannels(t *testing.T) {
	d := decode(t, `{
		"_pageset": "{not json",
		"__": {
			"pathInfo": "{",
			"entityPageSetUrlTemplates": "[",
			"locatorSourcePageSets": "{\"a\": 1"
		}
	}`)
	v := NewView(d)
	for name, err := range map[string]error{
		"pathInfo":        v.PathInfoErr,
		"pageSet":         v.PageSetErr,
		"entityTemplates": v.EntityTemplatesErr,
		"sourcePageSets":  v.SourcePageSetsErr,
	} {
		if !errors.Is(err, ErrMalformedConfig) {
			t.Fatalf("%s: err = %v, want ErrMalformedConfig", name, err)
		}
	}
}

func TestNewView_PageSetShapes(t *testing.T) {
	nested := decode(t, `{"_pageset": "{\"type\":\"ENTITY\",\"config\":{\"urlTemplate\":{\"primary\":\"p\",\"alternate\":\"a\"}}}"}`)
	flat := decode(t, `{"pageSetConfig": {"type": "DIRECTORY", "urlTemplate": {"primary": "p"}}}`)

	v := NewView(nested)
	if v.PageSet.Type != PageSetEntity || v.PageSet.URLTemplate.Alternate != "a" {
		t.Fatalf("nested PageSet = %+v", v.PageSet)
	}
	v = NewView(flat)
	if v.PageSet.Type != PageSetDirectory || v.PageSet.URLTemplate.Primary != "p" {
		t.Fatalf("flat PageSet = %+v", v.PageSet)
	}
	if v.PageSet.UsesEntityTemplates() {
		t.Fatalf("DIRECTORY page set must not use entity templates")
	}

	locales := decode(t, `{"_pageset": "{\"config\":{\"primaryLocale\":\"es\",\"includeLocalePrefixForPrimaryLocale\":true}}"}`)
	v = NewView(locales)
	if v.PageSet.PrimaryLocale != "es" || !v.PageSet.IncludeLocalePrefixForPrimaryLocale {
		t.Fatalf("config locale fields = %+v", v.PageSet)
	}
}

func TestNewView_SourcePageSetsKeepOrder(t *testing.T) {
	raw := `{"zeta":{"entityType":"ce_location","internalSavedFilterId":1111,"pathInfo":{"template":"first/[[id]]"}},` +
		`"alpha":{"entityType":"ce_location","internalSavedFilterId":"2222","pathInfo":{"template":"second/[[id]]"}},` +
		`"mid":{"entityType":"ce_atm"}}`
	d := Document{KeyInternal: map[string]any{"locatorSourcePageSets": raw}}

	v := NewView(d)
	if v.SourcePageSetsErr != nil {
		t.Fatalf("unexpected error: %v", v.SourcePageSetsErr)
	}
	ids := make([]string, 0, len(v.SourcePageSets))
	for _, s := range v.SourcePageSets {
		ids = append(ids, s.ID)
	}
	if !reflect.DeepEqual(ids, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("order = %v", ids)
	}
	if v.SourcePageSets[0].InternalSavedFilterID != "1111" || v.SourcePageSets[1].InternalSavedFilterID != "2222" {
		t.Fatalf("filter ids = %q, %q", v.SourcePageSets[0].InternalSavedFilterID, v.SourcePageSets[1].InternalSavedFilterID)
	}
	if v.SourcePageSets[2].PathInfo != nil {
		t.Fatalf("entry without pathInfo decoded as %+v", v.SourcePageSets[2].PathInfo)
	}
}

func TestNewView_DeprecatedFlag(t *testing.T) {
	v := NewView(decode(t, `{"__": {"isPrimaryLocale": false}}`))
	if v.IsPrimaryLocale == nil || *v.IsPrimaryLocale {
		t.Fatalf("IsPrimaryLocale = %v", v.IsPrimaryLocale)
	}
	if NewView(Document{}).IsPrimaryLocale != nil {
		t.Fatalf("unset flag must stay nil")
	}
}

func TestURLTemplatesSelect(t *testing.T) {
	both := &URLTemplates{Primary: "p", Alternate: "a"}
	onlyPrimary := &URLTemplates{Primary: "p"}
	onlyAlternate := &URLTemplates{Alternate: "a"}

	cases := []struct {
		name    string
		u       *URLTemplates
		primary bool
		want    string
	}{
		{"primary", both, true, "p"},
		{"alternate", both, false, "a"},
		{"alternate falls back to primary", onlyPrimary, false, "p"},
		{"primary falls back to alternate", onlyAlternate, true, "a"},
		{"nil", nil, true, ""},
	}
	for _, tc := range cases {
		if got := tc.u.Select(tc.primary); got != tc.want {
			t.Fatalf("%s: Select = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNormalizeLocales(t *testing.T) {
	d := decode(t, `{"locale": "Zh_HANS-hk", "meta": {"locale": "EN_us"}}`)
	n := NormalizeLocales(d)
	if n.String("locale") != "zh-hans-hk" || n.String("meta.locale") != "en-us" {
		t.Fatalf("normalized = %v / %v", n["locale"], n.String("meta.locale"))
	}
	if d.String("locale") != "Zh_HANS-hk" || d.String("meta.locale") != "EN_us" {
		t.Fatalf("input mutated: %v", d)
	}
}

func TestMergeProfile(t *testing.T) {
	parent := decode(t, `{
		"id": "parent",
		"name": "Arlington",
		"locale": "es",
		"meta": {"entityType": {"id": "dm_city"}, "locale": "es"},
		"__": {"pathInfo": {"template": "directory/[[id]]"}, "entityPageSetUrlTemplates": "{}"},
		"_pageset": "{\"type\":\"DIRECTORY\"}"
	}`)
	profile := decode(t, `{
		"id": "child",
		"address": {"city": "Fairfax"},
		"__": {"pathInfo": {"sourceEntityPageSetTemplate": "[[address.city]]"}}
	}`)
	parentBefore := parent.Clone()
	profileBefore := profile.Clone()

	m := MergeProfile(profile, parent)

	if !reflect.DeepEqual(parent, parentBefore) || !reflect.DeepEqual(profile, profileBefore) {
		t.Fatalf("MergeProfile mutated its inputs")
	}
	if m.ID() != "child" || m.Has("name") {
		t.Fatalf("top-level fields: id=%q name present=%v", m.ID(), m.Has("name"))
	}
	if m.String("locale") != "es" {
		t.Fatalf("locale = %q, want es", m.String("locale"))
	}
	if m.String("meta.entityType.id") != "dm_city" {
		t.Fatalf("meta not inherited: %v", m["meta"])
	}
	if m[KeyPageSet] != parent[KeyPageSet] {
		t.Fatalf("page set not carried over")
	}

	v := NewView(m)
	if v.IsPrimaryLocale == nil || *v.IsPrimaryLocale {
		t.Fatalf("merged flag = %v, want false for es", v.IsPrimaryLocale)
	}
	if v.PathInfo == nil || v.PathInfo.SourceEntityPageSetTemplate != "[[address.city]]" || v.PathInfo.Template != "" {
		t.Fatalf("profile pathInfo must win: %+v", v.PathInfo)
	}
	if v.EntityTemplates == nil {
		t.Fatalf("parent bag entries must be inherited")
	}
}

func TestMergeProfile_ExplicitFlagAndMetaLocale(t *testing.T) {
	parent := Document{"locale": "en"}
	profile := Document{"meta": map[string]any{"locale": "fr", "isPrimaryLocale": true}}

	v := NewView(MergeProfile(profile, parent))
	if v.Locale() != "fr" {
		t.Fatalf("locale = %q, want fr", v.Locale())
	}
	if v.IsPrimaryLocale == nil || !*v.IsPrimaryLocale {
		t.Fatalf("explicit isPrimaryLocale must win")
	}
}
