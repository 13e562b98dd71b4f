// internal/head/builder.go
//
// The Builder collects everything that belongs inside a rendered page’s
// <head> element.  One Builder serves one render call: the view layer
// pushes the title, canonical link, and structured data, then the theme’s
// page layout decides where each group is emitted.
//
// Groups
// ------
//   - Title      – single <title> (last SetTitle wins), HTML-escaped.
//   - Canonical  – single <link rel="canonical"> (last SetCanonical wins),
//     emitted ahead of every other link.
//   - Meta, Link, Script – pre-built tags, deduplicated on exact text.
//   - JSONLD, JSONLDValue – structured-data documents, deduplicated on a
//     content hash and wrapped in <script type="application/ld+json">.
//
// Notes
// -----
//   - Meta, Link, and Script take trusted markup; callers escape.
//   - Oxford commas, two spaces after periods.
package head

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"strings"
	"sync"
)

// tagSet is an insertion-ordered set of strings.
type tagSet struct {
	items []string
	seen  map[string]struct{}
}

func (s *tagSet) add(key, tag string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[key]; dup {
		return
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, tag)
}

// Builder is safe for concurrent use; a single mutex guards every group.
type Builder struct {
	mu        sync.Mutex
	title     string
	canonical string
	metas     tagSet
	links     tagSet
	scripts   tagSet
	jsonLD    tagSet
}

func New() *Builder { return &Builder{} }

// ------------------------------------------------------------------
// Writers
// ------------------------------------------------------------------

// SetTitle overrides the page <title>.  The last caller wins.
func (b *Builder) SetTitle(t string) {
	b.mu.Lock()
	b.title = t
	b.mu.Unlock()
}

// SetCanonical records the canonical href.  The last caller wins.
func (b *Builder) SetCanonical(href string) {
	b.mu.Lock()
	b.canonical = href
	b.mu.Unlock()
}

func (b *Builder) Meta(tag string)   { b.push(&b.metas, tag, tag) }
func (b *Builder) Link(tag string)   { b.push(&b.links, tag, tag) }
func (b *Builder) Script(tag string) { b.push(&b.scripts, tag, tag) }

// JSONLD adds a pre-serialized JSON-LD document.
func (b *Builder) JSONLD(js string) {
	sum := sha256.Sum256([]byte(js))
	b.push(&b.jsonLD, hex.EncodeToString(sum[:8]), js)
}

// JSONLDValue marshals v and adds it as a JSON-LD block.  encoding/json
// escapes “<”, so the payload cannot close its <script> element.
func (b *Builder) JSONLDValue(v any) error {
	js, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.JSONLD(string(js))
	return nil
}

func (b *Builder) push(set *tagSet, key, tag string) {
	b.mu.Lock()
	set.add(key, tag)
	b.mu.Unlock()
}

// ------------------------------------------------------------------
// Readers, called from theme templates
// ------------------------------------------------------------------

// Title returns a fully formed <title> tag or an empty string.
func (b *Builder) Title() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.title == "" {
		return ""
	}
	return template.HTML("<title>" + template.HTMLEscapeString(b.title) + "</title>")
}

// Links returns the canonical link, when set, followed by every other link.
func (b *Builder) Links() template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	var sb strings.Builder
	if b.canonical != "" {
		sb.WriteString(`<link rel="canonical" href="`)
		sb.WriteString(template.HTMLEscapeString(b.canonical))
		sb.WriteString(`">`)
	}
	sb.WriteString(strings.Join(b.links.items, ""))
	return template.HTML(sb.String())
}

func (b *Builder) Metas() template.HTML   { return b.join(&b.metas, "", "") }
func (b *Builder) Scripts() template.HTML { return b.join(&b.scripts, "", "") }

// JSON returns all JSON-LD blocks wrapped in <script> tags.
func (b *Builder) JSON() template.HTML {
	return b.join(&b.jsonLD, `<script type="application/ld+json">`, `</script>`)
}

// join concatenates a group, wrapping each entry in pre and post.
func (b *Builder) join(set *tagSet, pre, post string) template.HTML {
	b.mu.Lock()
	defer b.mu.Unlock()
	var sb strings.Builder
	for _, s := range set.items {
		sb.WriteString(pre)
		sb.WriteString(s)
		sb.WriteString(post)
	}
	return template.HTML(sb.String())
}
