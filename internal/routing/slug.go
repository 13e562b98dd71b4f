// internal/routing/slug.go
//
// Slug and path helpers.
//
// • NormalizeSlug(raw) ─ converts an arbitrary, possibly multi-segment path
//   into a lower-case, hyphen-delimited, URL-safe slug.
// • JoinPath(segments...) ─ joins path segments with a single “/”, dropping
//   empty segments and the separators that would surround them.
//
// Rules (NormalizeSlug)
// ---------------------
// 1. Lower-case everything, then strip combining diacritics (é → e).
// 2. Keep Unicode letters, digits, “.”, “_”, and “-”.  “/” separates
//    segments.  Any other rune (spaces, punctuation, emoji) becomes “-”.
// 3. Collapse runs of “-” inside a segment to one “-”.
// 4. Trim “-” from both ends of every segment and drop segments that end up
//    empty or consist only of dots, which collapses “//” and “/./”.
//
// Notes
// -----
// • NormalizeSlug is idempotent: NormalizeSlug(NormalizeSlug(s)) equals
//   NormalizeSlug(s) for every s.
// • No leading or trailing “/” ever survives; callers prepend their own
//   relative prefix (for example "../").
// • Oxford commas, two spaces after periods.

package routing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSlug converts raw → lower-kebab slug, preserving “/” separators.
func NormalizeSlug(raw string) string {
	if raw == "" {
		return ""
	}

	folded := stripMarks(strings.ToLower(raw))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '/':
			b.WriteRune('/')
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	parts := strings.Split(b.String(), "/")
	out := parts[:0]
	for _, p := range parts {
		p = collapseDashes(p)
		p = strings.Trim(p, "-")
		if p == "" || strings.Trim(p, ".") == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, "/")
}

// JoinPath joins segments with exactly one “/” between them.  Empty
// segments, and the separators they would need, are omitted.  The result
// never starts with “/”.
func JoinPath(segments ...string) string {
	kept := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s == "" {
			continue
		}
		kept = append(kept, s)
	}
	return strings.Join(kept, "/")
}

// CollapseSlashes replaces every run of “/” with a single “/”.
func CollapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	lastWasSlash := false
	for _, r := range s {
		if r == '/' {
			if lastWasSlash {
				continue
			}
			lastWasSlash = true
		} else {
			lastWasSlash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripMarks removes non-spacing combining marks after canonical
// decomposition, then recomposes what is left.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func collapseDashes(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	lastWasDash := false
	for _, r := range s {
		if r == '-' {
			if lastWasDash {
				continue
			}
			lastWasDash = true
		} else {
			lastWasDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
