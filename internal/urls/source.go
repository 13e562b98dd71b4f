package urls

import (
	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/document"
)

// FromSourcePageSets resolves a locator result against the parent's
// locatorSourcePageSets.  The first entry whose entity type equals the
// profile's type, and whose saved filter (if any) is among the profile's
// savedFilters, is the match.  A match without a URL template, or no match
// at all, reports false.
func FromSourcePageSets(profile, parent document.Document, relativePrefixToRoot string) (string, bool) {
	pv := document.NewView(parent)
	if pv.SourcePageSetsErr != nil {
		zap.L().Debug("locatorSourcePageSets unreadable",
			zap.String("id", parent.ID()), zap.Error(pv.SourcePageSetsErr))
		return "", false
	}

	match, ok := matchSourcePageSet(pv.SourcePageSets, profile)
	if !ok || match.PathInfo == nil || match.PathInfo.Template == "" {
		return "", false
	}

	merged := document.NormalizeLocales(document.MergeProfile(profile, parent))
	v := document.NewView(merged).WithPathInfo(match.PathInfo)
	url, err := fromPathInfo(pathTemplate)(&request{view: v, prefix: relativePrefixToRoot})
	if err != nil || url == "" {
		return "", false
	}
	return url, true
}

// ResolveLocatorResult tries the source page sets first and falls back to
// ResolveChild.
func ResolveLocatorResult(profile, parent document.Document, relativePrefixToRoot string) (Resolution, error) {
	if url, ok := FromSourcePageSets(profile, parent, relativePrefixToRoot); ok {
		return Resolution{URL: url, Strategy: StrategySourcePageSet}, nil
	}
	return ResolveChild(profile, parent, relativePrefixToRoot)
}

func matchSourcePageSet(sets []document.SourcePageSet, profile document.Document) (document.SourcePageSet, bool) {
	entityType := profile.String("type")
	if entityType == "" {
		return document.SourcePageSet{}, false
	}
	filters := savedFilters(profile)
	for _, s := range sets {
		if s.EntityType != entityType {
			continue
		}
		if s.InternalSavedFilterID != "" {
			if _, ok := filters[s.InternalSavedFilterID]; !ok {
				continue
			}
		}
		return s, true
	}
	return document.SourcePageSet{}, false
}

// savedFilters collects profile.savedFilters as strings so numeric and
// string ids compare equal.
func savedFilters(profile document.Document) map[string]struct{} {
	list, _ := profile["savedFilters"].([]any)
	out := make(map[string]struct{}, len(list))
	for _, f := range list {
		if s := document.Scalar(f); s != "" {
			out[s] = struct{}{}
		}
	}
	return out
}
