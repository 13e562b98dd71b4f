package urls

import (
	"github.com/yanizio/pagepath/internal/document"
)

var childChain = []strategy{
	{StrategyPathInfo, fromPathInfo(sourceEntityTemplate)},
	{StrategyLegacyChild, legacyChildTemplate},
}

// ResolveChild returns the URL of a child profile listed on parent's page.
// The profile is merged with the parent's locale and side channels first;
// neither input is mutated.
func ResolveChild(profile, parent document.Document, relativePrefixToRoot string) (Resolution, error) {
	merged := document.NormalizeLocales(document.MergeProfile(profile, parent))
	v := document.NewView(merged)
	return run(ResolverChild, childChain, &request{view: v, prefix: relativePrefixToRoot})
}

// ChildURL is ResolveChild without the strategy name.
func ChildURL(profile, parent document.Document, relativePrefixToRoot string) (string, error) {
	r, err := ResolveChild(profile, parent, relativePrefixToRoot)
	return r.URL, err
}
