package projects

import (
	"net/http"

	"github.com/louisbranch/distilling.works/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request, projectID string) {
	loc, _ := h.PageLocalizer(w, r)
	project, err := h.service.getProject(httpx.RequestContext(r), projectID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r,
		project.Name, http.StatusOK,
		projectDetailHeader(project.Name, loc),
		webtemplates.AppMainLayoutOptions{},
		webtemplates.ProjectDetailFragment(detailView(project), loc),
	)
}
