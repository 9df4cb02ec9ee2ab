// Package home provides the root redirect module.
package home

import (
	"net/http"

	module "github.com/louisbranch/distilling.works/internal/services/web/module"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

// Module redirects the site root to the projects listing. Mounted at "/" it
// also owns every path no other module claims, so non-root paths render the
// shared 404 page instead of falling through to the default mux response.
type Module struct {
	base modulehandler.Base
}

// New returns a home module with zero-value dependencies.
func New() Module {
	return Module{}
}

// NewWithBase returns a home module using the shared handler base.
func NewWithBase(base modulehandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the root redirect handler.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root, m.handleRoot)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

func (m Module) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		m.base.WriteNotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.Projects, http.StatusFound)
}
