package projects

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/distilling.works/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service *service
}

func newHandlers(svc *service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: svc}
}

// withProjectID extracts the path project id and rejects blank values before
// invoking the wrapped handler.
func (h handlers) withProjectID(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := strings.TrimSpace(r.PathValue("projectID"))
		if projectID == "" {
			h.WriteNotFound(w, r)
			return
		}
		next(w, r, projectID)
	}
}

// --- Headers ---

func projectsListHeader(loc webtemplates.Localizer) *webtemplates.AppMainHeader {
	return &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "projects.title"),
		Subtitle: webtemplates.T(loc, "projects.subtitle"),
		Breadcrumbs: []webtemplates.BreadcrumbItem{
			{Label: webtemplates.T(loc, "projects.title")},
		},
		Action: &webtemplates.AppMainHeaderAction{
			Label: webtemplates.T(loc, "projects.action_new"),
			URL:   routepath.ProjectsNew,
		},
	}
}

func projectsNewHeader(loc webtemplates.Localizer) *webtemplates.AppMainHeader {
	return &webtemplates.AppMainHeader{
		Title:    webtemplates.T(loc, "projects.new.title"),
		Subtitle: webtemplates.T(loc, "projects.new.subtitle"),
		Breadcrumbs: []webtemplates.BreadcrumbItem{
			{Label: webtemplates.T(loc, "projects.title"), URL: routepath.Projects},
			{Label: webtemplates.T(loc, "projects.new.title")},
		},
	}
}

func projectDetailHeader(name string, loc webtemplates.Localizer) *webtemplates.AppMainHeader {
	return &webtemplates.AppMainHeader{
		Title: name,
		Breadcrumbs: []webtemplates.BreadcrumbItem{
			{Label: webtemplates.T(loc, "projects.title"), URL: routepath.Projects},
			{Label: name},
		},
	}
}

// --- Query parsing ---

// listingRequest reads the page number and view mode from the query string.
// Pages below 1 and unknown view modes fall back to their defaults.
func listingRequest(r *http.Request) (int, string) {
	page := 1
	view := routepath.ViewGrid
	if r == nil || r.URL == nil {
		return page, view
	}
	query := r.URL.Query()
	if parsed, err := strconv.Atoi(strings.TrimSpace(query.Get(routepath.PageQueryKey))); err == nil && parsed > 1 {
		page = parsed
	}
	view = routepath.NormalizeView(query.Get(routepath.ViewQueryKey))
	return page, view
}
