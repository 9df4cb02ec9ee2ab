package projects

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/distilling.works/internal/services/web/platform/flash"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/httpx"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/weberror"
	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

func (h handlers) handleNewProject(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	h.writeCreateForm(w, r, webtemplates.ProjectCreateFormValues{}, http.StatusOK, loc)
}

// handleCreateSubmit processes the creation form. Validation failures
// re-render the form with a localized message; gateway failures surface the
// shared error page. Success redirects to the new project's workspace.
func (h handlers) handleCreateSubmit(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(w, r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.EK(apperrors.KindInvalidInput, "projects.error.create_failed", "failed to parse project create form"))
		return
	}

	input := CreateProjectInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}

	created, err := h.service.createProject(httpx.RequestContext(r), input)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInvalidInput {
			h.writeCreateForm(w, r, webtemplates.ProjectCreateFormValues{
				Name:         input.Name,
				Description:  input.Description,
				ErrorMessage: weberror.PublicMessage(loc, err),
			}, http.StatusUnprocessableEntity, loc)
			return
		}
		h.WriteError(w, r, err)
		return
	}

	flashnotice.Write(w, r, flashnotice.NoticeSuccess("projects.create.notice_created"))
	httpx.WriteRedirect(w, r, routepath.Project(created.ID))
}

func (h handlers) writeCreateForm(w http.ResponseWriter, r *http.Request, values webtemplates.ProjectCreateFormValues, statusCode int, loc webtemplates.Localizer) {
	h.WritePage(w, r,
		webtemplates.T(loc, "projects.new.title"), statusCode,
		projectsNewHeader(loc),
		webtemplates.AppMainLayoutOptions{},
		webtemplates.ProjectCreateFragment(values, loc),
	)
}
