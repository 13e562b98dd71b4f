package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	th, err := (&Manager{}).Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range []string{"page", "breadcrumbs", "listing"} {
		if th.Renderer.Lookup(name) == nil {
			t.Fatalf("template %q missing", name)
		}
	}
	if got := th.Asset("css/site.css"); got != "/themes/default/assets/css/site.css" {
		t.Fatalf("Asset = %q", got)
	}
}

func TestLoad_Override(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "acme", "templates")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := `{{ define "listing" }}<p class="acme">{{ len .Listing }} {{ asset "x.css" }}</p>{{ end }}`
	if err := os.WriteFile(filepath.Join(dir, "listing.html"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := (&Manager{BaseDir: base}).Load("acme")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var buf bytes.Buffer
	data := map[string]any{"Listing": []int{1, 2}}
	if err := th.Renderer.ExecuteTemplate(&buf, "listing", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, `2 /themes/acme/assets/x.css`) {
		t.Fatalf("override not applied: %q", got)
	}
}

func TestLoad_MissingTheme(t *testing.T) {
	if _, err := (&Manager{BaseDir: t.TempDir()}).Load("nope"); err == nil {
		t.Fatalf("expected error for missing theme")
	}
}

func TestOverrideFiles(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"b.html", "sub/a.HTML", "notes.txt"} {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := overrideFiles(dir)
	if err != nil {
		t.Fatalf("overrideFiles: %v", err)
	}
	want := []string{filepath.Join(dir, "b.html"), filepath.Join(dir, "sub", "a.HTML")}
	if len(files) != 2 || files[0] != want[0] || files[1] != want[1] {
		t.Fatalf("files = %v, want %v", files, want)
	}

	if files, err := overrideFiles(filepath.Join(dir, "missing")); err != nil || files != nil {
		t.Fatalf("missing dir = %v, %v", files, err)
	}
}
