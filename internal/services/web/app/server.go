package app

import "net/http"

// BuildRootHandler composes a root mux from the configured module set. A nil
// language resolver is fine: the localizer falls back to the request chain.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(cfg.Modules)
}
