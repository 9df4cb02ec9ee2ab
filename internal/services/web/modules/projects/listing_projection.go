package projects

import (
	"strings"
	"time"

	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

// displayTimestampLayout matches the timestamp format rendered across studio pages.
const displayTimestampLayout = "2006-01-02 15:04 UTC"

// listingView projects a cached snapshot into the listing fragment view model.
func listingView(snapshot pageSnapshot, view string) webtemplates.ProjectsListingView {
	cards := make([]webtemplates.ProjectCard, 0, len(snapshot.Projects))
	for _, project := range snapshot.Projects {
		cards = append(cards, projectCard(project))
	}
	return webtemplates.ProjectsListingView{
		Projects:   cards,
		View:       routepath.NormalizeView(view),
		Page:       snapshot.Page,
		TotalPages: snapshot.TotalPages,
		TotalCount: snapshot.TotalCount,
	}
}

func projectCard(project Project) webtemplates.ProjectCard {
	return webtemplates.ProjectCard{
		ID:          project.ID,
		Name:        project.Name,
		Description: strings.TrimSpace(project.Description),
		DetailURL:   routepath.Project(project.ID),
		CreatedAt:   displayTimestamp(project.CreatedAt),
		UpdatedAt:   displayTimestamp(project.UpdatedAt),
	}
}

// detailView projects a loaded project into the detail page view model. The
// document count is only shown when the API reported one.
func detailView(project Project) webtemplates.ProjectDetailView {
	return webtemplates.ProjectDetailView{
		ID:            project.ID,
		Name:          project.Name,
		Description:   strings.TrimSpace(project.Description),
		DocumentCount: project.DocumentCount,
		CreatedAt:     displayTimestamp(project.CreatedAt),
		UpdatedAt:     displayTimestamp(project.UpdatedAt),
	}
}

func displayTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(displayTimestampLayout)
}
