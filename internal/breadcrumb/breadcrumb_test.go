package breadcrumb

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/yanizio/pagepath/internal/document"
)

type link = document.BreadcrumbLink

func doc(t *testing.T, s string) document.Document {
	t.Helper()
	var d document.Document
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return d
}

const base = `
	"name":"123 Test Rd",
	"locale":"es",
	"address":{"line1":"123 Test Rd","city":"Testville","region":"TS","countryCode":"US"},
	"dm_directoryParents_123_locations":[
		{"name":"Directory Root","slug":"index.html"},
		{"name":"US","slug":"us"},
		{"name":"TS","slug":"ts"},
		{"name":"Testville","slug":"testville"}
	]`

func TestResolve_Templates(t *testing.T) {
	d := doc(t, `{"name":"Leaf","locale":"en",
		"address":{"countryCode":"US","region":"TS"},
		"__":{"pathInfo":{"primaryLocale":"en","breadcrumbTemplates":["index.html","[[address.countryCode]]","[[address.countryCode]]/[[address.region]]"]}}}`)

	got := ResolveWith(d, Options{})
	want := []link{
		{Name: "index.html", Slug: "index.html"},
		{Name: "US", Slug: "us"},
		{Name: "TS", Slug: "us/ts"},
		{Name: "Leaf", Slug: ""},
	}
	if got.Strategy != StrategyPathInfo || !reflect.DeepEqual(got.Links, want) {
		t.Fatalf("got %+v", got)
	}
}

func TestResolve_TemplatesWithLocaleAndPrefix(t *testing.T) {
	d := doc(t, `{"name":"Leaf","locale":"es",
		"address":{"countryCode":"US","region":"TS"},
		"__":{"pathInfo":{"primaryLocale":"en","breadcrumbPrefix":"Locations","breadcrumbTemplates":["[[address.countryCode]]","[[missing]]","[[address.countryCode]]//[[address.region]]"]}}}`)

	want := []link{
		{Name: "US", Slug: "es/locations/us"},
		{Name: "TS", Slug: "es/locations/us/ts"},
		{Name: "Leaf", Slug: ""},
	}
	if got := Resolve(d); !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %+v", got)
	}
}

func TestResolve_DirectoryParents(t *testing.T) {
	cases := []struct {
		name, fixture string
		want          []link
	}{
		{
			"pathInfo without templates prefixes parents",
			`{` + base + `,"__":{"pathInfo":{"primaryLocale":"en"}}}`,
			[]link{
				{Name: "Directory Root", Slug: "es/index.html"},
				{Name: "US", Slug: "es/us"},
				{Name: "TS", Slug: "es/ts"},
				{Name: "Testville", Slug: "es/testville"},
				{Name: "123 Test Rd", Slug: ""},
			},
		},
		{
			"pathInfo with breadcrumbPrefix",
			`{` + base + `,"__":{"pathInfo":{"primaryLocale":"en","breadcrumbPrefix":"prefix"}}}`,
			[]link{
				{Name: "Directory Root", Slug: "es/prefix/index.html"},
				{Name: "US", Slug: "es/prefix/us"},
				{Name: "TS", Slug: "es/prefix/ts"},
				{Name: "Testville", Slug: "es/prefix/testville"},
				{Name: "123 Test Rd", Slug: ""},
			},
		},
		{
			"no pathInfo passes slugs through",
			`{` + base + `,"__":{}}`,
			[]link{
				{Name: "Directory Root", Slug: "index.html"},
				{Name: "US", Slug: "us"},
				{Name: "TS", Slug: "ts"},
				{Name: "Testville", Slug: "testville"},
				{Name: "123 Test Rd", Slug: ""},
			},
		},
		{
			"children without parents",
			`{"name":"123 Test Rd","locale":"es","dm_directoryChildren":[{}]}`,
			[]link{{Name: "123 Test Rd", Slug: ""}},
		},
		{
			"nameless everything",
			`{"locale":"es","dm_directoryParents_x":[{"name":"","slug":"directory-parent"}]}`,
			[]link{},
		},
		{
			"no parents and no children",
			`{"name":"Lonely","locale":"en"}`,
			[]link{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(doc(t, tc.fixture)); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Resolve = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestResolveWith_CustomParents(t *testing.T) {
	d := doc(t, `{"name":"Leaf","locale":"en"}`)
	got := ResolveWith(d, Options{Parents: func(document.Document) []link {
		return []link{{Name: "Directory Parent", Slug: "directory-parent"}}
	}})
	want := []link{{Name: "Directory Parent", Slug: "directory-parent"}, {Name: "Leaf", Slug: ""}}
	if got.Strategy != StrategyDirectoryParents || !reflect.DeepEqual(got.Links, want) {
		t.Fatalf("got %+v", got)
	}
}

func TestResolve_DoesNotMutate(t *testing.T) {
	d := doc(t, `{`+base+`,"locale":"ES","__":{"pathInfo":"{\"primaryLocale\":\"en\"}"}}`)
	before := d.Clone()
	_ = Resolve(d)
	if !reflect.DeepEqual(before, d) {
		t.Fatalf("input mutated")
	}
}

func TestDirectoryParents(t *testing.T) {
	d := doc(t, `{
		"dm_directoryParents_b":[{"name":"B","slug":"b"}],
		"dm_directoryParents_a":[{"name":"A"}],
		"dm_directoryParents_c":[{"name":"C","slug":"c"}]
	}`)
	want := []link{{Name: "B", Slug: "b"}}
	if got := DirectoryParents(d); !reflect.DeepEqual(got, want) {
		t.Fatalf("DirectoryParents = %+v", got)
	}
	if got := DirectoryParents(doc(t, `{"dm_directoryParents_x":"nope"}`)); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestSchema(t *testing.T) {
	crumbs := []link{{Name: "Root", Slug: "index.html"}, {Name: "US", Slug: "us"}, {Name: "Leaf", Slug: ""}}
	got := Schema(doc(t, `{"name":"Leaf"}`), crumbs, "../", "page-1")
	if got == nil || len(got.ItemListElement) != 3 {
		t.Fatalf("Schema = %+v", got)
	}
	last := got.ItemListElement[2]
	if last.Position != 3 || last.Item.ID != "page-1" || last.Name != "Leaf" {
		t.Fatalf("leaf item = %+v", last)
	}
	if got.ItemListElement[1].Item.ID != "../us" {
		t.Fatalf("ancestor id = %q", got.ItemListElement[1].Item.ID)
	}

	root := Schema(doc(t, `{"name":"Directory","meta":{"entityType":{"id":"dm_root"}}}`), nil, "", "root")
	if root == nil || len(root.ItemListElement) != 1 || root.ItemListElement[0].Item.ID != "root" {
		t.Fatalf("root schema = %+v", root)
	}

	if s := Schema(doc(t, `{"name":"x"}`), []link{{Name: "x"}}, "", "p"); s != nil {
		t.Fatalf("expected nil schema, got %+v", s)
	}
}
