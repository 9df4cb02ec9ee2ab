package projects

import (
	"net/http"

	"github.com/louisbranch/distilling.works/internal/services/web/platform/httpx"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

// handleIndex renders the listing page shell with a lazy-loaded listing
// fragment. The loading indicator occupies the content region until HTMX
// swaps in the fragment served by handleListingFragment.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	page, view := listingRequest(r)
	h.WritePage(w, r,
		webtemplates.T(loc, "projects.title"), http.StatusOK,
		projectsListHeader(loc),
		webtemplates.AppMainLayoutOptions{},
		webtemplates.LazyLoad(
			routepath.ProjectsListingPage(page, view),
			webtemplates.T(loc, "projects.listing.loading"),
		),
	)
}

// handleListingFragment serves the loaded listing content for one page and
// view mode. Gateway failures surface the shared error page; an empty
// collection redirects to the creation flow once per became-empty snapshot
// and renders the empty-state panel on repeat requests.
func (h handlers) handleListingFragment(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	page, view := listingRequest(r)

	snapshot, err := h.service.listingPage(httpx.RequestContext(r), page)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	if snapshot.Empty() {
		if h.service.shouldRedirectToCreate(snapshot) {
			httpx.WriteRedirect(w, r, routepath.ProjectsNew)
			return
		}
		h.WritePage(w, r,
			webtemplates.T(loc, "projects.title"), http.StatusOK,
			projectsListHeader(loc),
			webtemplates.AppMainLayoutOptions{},
			webtemplates.ProjectsEmptyFragment(loc),
		)
		return
	}

	h.WritePage(w, r,
		webtemplates.T(loc, "projects.title"), http.StatusOK,
		projectsListHeader(loc),
		webtemplates.AppMainLayoutOptions{},
		webtemplates.ProjectsListingFragment(listingView(snapshot, view), loc),
	)
}
