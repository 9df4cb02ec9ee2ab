// Package module defines the feature contract used by studio composition.
package module

import (
	"context"
	"net/http"

	"github.com/louisbranch/distilling.works/internal/clients/projectapi"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// ProjectClient is the narrow project API surface shared with modules.
// *projectapi.Client satisfies it; tests substitute fakes.
type ProjectClient interface {
	ListProjects(ctx context.Context, page int, pageSize int) (projectapi.ProjectList, error)
	GetProject(ctx context.Context, id string) (projectapi.Project, error)
	CreateProject(ctx context.Context, input projectapi.CreateProjectInput) (projectapi.Project, error)
}

// Dependencies carries the shared clients and resolvers required to compose
// the studio module registry. Client fields are typed as narrow interfaces so
// modules never see the full API client surface.
type Dependencies struct {
	ProjectClient   ProjectClient
	ResolveLanguage ResolveLanguage
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by studio composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability. Modules with gateway dependencies implement this
// so the registry can derive service health without centralizing client knowledge.
type HealthReporter interface {
	Healthy() bool
}
