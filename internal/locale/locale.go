// Package locale decides whether a document's locale is the primary one for
// its page set, and whether URLs built for it carry a locale segment.
//
// Precedence for IsPrimary:
//
//  1. pathInfo.primaryLocale, when set, compared with the document locale;
//  2. the deprecated __.isPrimaryLocale flag, when set;
//  3. the document locale equals "en".
package locale

import (
	"fmt"

	"github.com/yanizio/pagepath/internal/document"
)

// DefaultPrimary is the primary locale assumed when nothing says otherwise.
const DefaultPrimary = "en"

// IsPrimary reports whether v's locale is the page set's primary locale.
func IsPrimary(v *document.View) bool {
	loc := document.NormalizeLocale(v.Locale())
	if v.PathInfo != nil && v.PathInfo.PrimaryLocale != "" {
		return loc == document.NormalizeLocale(v.PathInfo.PrimaryLocale)
	}
	if v.IsPrimaryLocale != nil {
		return *v.IsPrimaryLocale
	}
	return loc == DefaultPrimary
}

// IsPrimaryLocation is IsPrimary for the structural location path: the
// page-set config's primaryLocale is consulted before the "en" default.
func IsPrimaryLocation(v *document.View) bool {
	if v.PathInfo != nil && v.PathInfo.PrimaryLocale != "" {
		return IsPrimary(v)
	}
	if v.IsPrimaryLocale != nil {
		return *v.IsPrimaryLocale
	}
	if v.PageSet != nil && v.PageSet.PrimaryLocale != "" {
		return document.NormalizeLocale(v.Locale()) == document.NormalizeLocale(v.PageSet.PrimaryLocale)
	}
	return IsPrimary(v)
}

// ShouldPrefix reports whether a "{locale}/" segment belongs in front of
// URLs for v.  Alternate locales always get one; the primary locale only
// when pathInfo.includeLocalePrefixForPrimaryLocale is set.
func ShouldPrefix(v *document.View) bool {
	if !IsPrimary(v) {
		return true
	}
	return v.PathInfo != nil && v.PathInfo.IncludeLocalePrefixForPrimaryLocale
}

// Require returns the resolved locale or ErrMissingLocale.
func Require(v *document.View) (string, error) {
	loc := v.Locale()
	if loc == "" {
		return "", fmt.Errorf("%w (id=%q)", document.ErrMissingLocale, v.Doc.ID())
	}
	return loc, nil
}

// Segment returns the locale path segment for v, or "" when no prefix is
// due.  It fails only when a prefix is due and the locale is missing.
func Segment(v *document.View) (string, error) {
	if !ShouldPrefix(v) {
		return "", nil
	}
	return Require(v)
}
