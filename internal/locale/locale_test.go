package locale

import (
	"errors"
	"testing"

	"github.com/yanizio/pagepath/internal/document"
)

func view(locale string, pathInfo *document.PathInfo, flag *bool) *document.View {
	bag := map[string]any{}
	if pathInfo != nil {
		bag["pathInfo"] = pathInfo
	}
	if flag != nil {
		bag["isPrimaryLocale"] = *flag
	}
	d := document.Document{document.KeyInternal: bag}
	if locale != "" {
		d["locale"] = locale
	}
	return document.NewView(d)
}

func boolPtr(b bool) *bool { return &b }

func TestIsPrimary(t *testing.T) {
	cases := []struct {
		name string
		v    *document.View
		want bool
	}{
		{"pathInfo match", view("es", &document.PathInfo{PrimaryLocale: "es"}, nil), true},
		{"pathInfo mismatch", view("en", &document.PathInfo{PrimaryLocale: "es"}, nil), false},
		{"pathInfo beats deprecated flag", view("en", &document.PathInfo{PrimaryLocale: "en"}, boolPtr(false)), true},
		{"deprecated flag true", view("fr", nil, boolPtr(true)), true},
		{"deprecated flag false", view("en", nil, boolPtr(false)), false},
		{"pathInfo without primaryLocale defers to flag", view("fr", &document.PathInfo{}, boolPtr(true)), true},
		{"default en", view("en", nil, nil), true},
		{"default non-en", view("es", nil, nil), false},
		{"default missing locale", view("", nil, nil), false},
		{"case-insensitive compare", view("EN_us", &document.PathInfo{PrimaryLocale: "en-US"}, nil), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPrimary(tc.v); got != tc.want {
				t.Fatalf("IsPrimary = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsPrimaryLocation(t *testing.T) {
	withPageSet := func(v *document.View, primary string) *document.View {
		v.PageSet = &document.PageSetConfig{PrimaryLocale: primary}
		return v
	}
	cases := []struct {
		name string
		v    *document.View
		want bool
	}{
		{"page-set primary match", withPageSet(view("es", nil, nil), "es"), true},
		{"page-set primary mismatch", withPageSet(view("en", nil, nil), "es"), false},
		{"deprecated flag beats page set", withPageSet(view("en", nil, boolPtr(true)), "es"), true},
		{"pathInfo beats page set", withPageSet(view("es", &document.PathInfo{PrimaryLocale: "en"}, nil), "es"), false},
		{"no page set falls back", view("en", nil, nil), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPrimaryLocation(tc.v); got != tc.want {
				t.Fatalf("IsPrimaryLocation = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShouldPrefix(t *testing.T) {
	include := &document.PathInfo{PrimaryLocale: "en", IncludeLocalePrefixForPrimaryLocale: true}
	exclude := &document.PathInfo{PrimaryLocale: "en"}

	cases := []struct {
		name string
		v    *document.View
		want bool
	}{
		{"primary without include", view("en", exclude, nil), false},
		{"primary with include", view("en", include, nil), true},
		{"alternate without include", view("es", exclude, nil), true},
		{"alternate with include", view("es", include, nil), true},
		{"no pathInfo primary", view("en", nil, nil), false},
		{"no pathInfo alternate", view("de", nil, nil), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldPrefix(tc.v); got != tc.want {
				t.Fatalf("ShouldPrefix = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	seg, err := Segment(view("es", nil, nil))
	if err != nil || seg != "es" {
		t.Fatalf("Segment = %q, %v", seg, err)
	}
	seg, err = Segment(view("en", nil, nil))
	if err != nil || seg != "" {
		t.Fatalf("primary Segment = %q, %v", seg, err)
	}
	if _, err := Segment(view("", nil, nil)); !errors.Is(err, document.ErrMissingLocale) {
		t.Fatalf("missing locale err = %v", err)
	}
}
