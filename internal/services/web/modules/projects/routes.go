package projects

import (
	"net/http"

	"github.com/louisbranch/distilling.works/internal/services/web/platform/httpx"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Projects, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsPrefix+"{$}", h.handleIndex)

	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsListing, h.handleListingFragment)

	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsNew, h.handleNewProject)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectsCreate, h.handleNewProject)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectsCreate, h.handleCreateSubmit)

	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectPattern, h.withProjectID(h.handleDetail))
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectPattern, httpx.MethodNotAllowed(http.MethodGet))

	mux.HandleFunc(http.MethodGet+" "+routepath.ProjectRestPattern, h.WriteNotFound)
	mux.HandleFunc(http.MethodPost+" "+routepath.ProjectRestPattern, h.WriteNotFound)
}
