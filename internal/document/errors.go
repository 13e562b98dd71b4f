package document

import "errors"

// Resolution error taxonomy.  Strategy-level errors never escape a resolver
// chain; only ErrResolutionExhausted reaches callers.
var (
	// ErrMissingLocale means no usable locale where one is required.
	ErrMissingLocale = errors.New("document has no locale")

	// ErrMissingTemplateInput means a strategy's template or config field
	// is absent, so the strategy does not apply.
	ErrMissingTemplateInput = errors.New("template input not configured")

	// ErrMalformedConfig means a JSON side channel failed to decode.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrResolutionExhausted means every strategy failed or was inapplicable.
	ErrResolutionExhausted = errors.New("could not resolve url")
)
