package templates

import (
	"strings"

	"github.com/louisbranch/distilling.works/internal/platform/branding"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	AppName      string
}

// ComposePageTitle appends the product suffix to a page title. Titles that
// already carry the brand suffix pass through unchanged.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	if strings.HasSuffix(title, " - "+branding.AppName) {
		return strings.TrimSuffix(title, " - "+branding.AppName) + " | " + branding.AppName
	}
	return title + " | " + branding.AppName
}
