// internal/urls/chain.go
//
// Ordered strategy chains.
//
// Context
// -------
// Every URL resolver is a list of independent strategies tried in order.
// The first strategy that returns a non-empty URL wins.  A strategy that
// returns an error, whether its input is absent (ErrMissingTemplateInput),
// its locale is missing (ErrMissingLocale), or its side channel failed to
// decode (ErrMalformedConfig), is skipped and the next one is tried.  Only
// total exhaustion surfaces to the caller, as ErrResolutionExhausted.
//
// Adding support for another configuration generation means appending one
// strategy; nothing else in the chain changes.
//
// Notes
// -----
// • Strategies are pure: they read the request and return a string.
// • Swallowed failures are logged at DEBUG through the global zap logger.
// • Oxford commas, two spaces after periods.
package urls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yanizio/pagepath/internal/document"
)

// Strategy names reported in Resolution.Strategy.
const (
	StrategyPathInfo        = "path_info"
	StrategyPageSetTemplate = "page_set_template"
	StrategyLocationPath    = "location_path"
	StrategyLegacyChild     = "legacy_child_template"
	StrategySourcePageSet   = "source_page_set"
)

// Resolver names, used for logging and metrics labels.
const (
	ResolverEntity  = "entity"
	ResolverChild   = "child"
	ResolverLocator = "locator"
)

// Errors re-exported for callers that only import urls.
var (
	ErrMissingLocale        = document.ErrMissingLocale
	ErrMissingTemplateInput = document.ErrMissingTemplateInput
	ErrMalformedConfig      = document.ErrMalformedConfig
	ErrResolutionExhausted  = document.ErrResolutionExhausted
)

// Resolution is a resolved URL plus the strategy that produced it.
type Resolution struct {
	URL      string `json:"url"`
	Strategy string `json:"strategy"`
}

// request is the single input every strategy receives.
type request struct {
	view   *document.View
	prefix string
}

type strategy struct {
	name    string
	resolve func(*request) (string, error)
}

// run walks strategies in order.
func run(resolver string, chain []strategy, req *request) (Resolution, error) {
	for _, s := range chain {
		url, err := s.resolve(req)
		if err != nil {
			zap.L().Debug("url strategy skipped",
				zap.String("resolver", resolver),
				zap.String("strategy", s.name),
				zap.String("id", req.view.Doc.ID()),
				zap.Error(err))
			continue
		}
		if url != "" {
			return Resolution{URL: url, Strategy: s.name}, nil
		}
	}
	zap.L().Warn("url resolution exhausted",
		zap.String("resolver", resolver),
		zap.String("id", req.view.Doc.ID()))
	return Resolution{}, fmt.Errorf("%w: %s resolver (id=%q)",
		ErrResolutionExhausted, resolver, req.view.Doc.ID())
}
