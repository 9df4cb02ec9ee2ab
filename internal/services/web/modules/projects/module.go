// Package projects provides the project listing, creation, and detail routes.
package projects

import (
	"net/http"

	module "github.com/louisbranch/distilling.works/internal/services/web/module"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

// Module provides project workspace routes.
type Module struct {
	gateway ProjectGateway
	base    modulehandler.Base
}

// New returns a projects module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a projects module backed by the given gateway.
func NewWithGateway(gateway ProjectGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "projects" }

// Healthy reports whether the projects module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires project route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProjectsPrefix, Handler: mux}, nil
}
