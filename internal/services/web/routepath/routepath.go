// Package routepath stores canonical HTTP paths for studio web modules.
package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root               = "/"
	Health             = "/up"
	HealthJSON         = "/healthz"
	StaticPrefix       = "/static/"
	Projects           = "/projects"
	ProjectsPrefix     = "/projects/"
	ProjectsNew        = "/projects/new"
	ProjectsCreate     = "/projects/create"
	ProjectsListing    = "/projects/listing"
	ProjectPattern     = ProjectsPrefix + "{projectID}"
	ProjectRestPattern = ProjectsPrefix + "{projectID}/{rest...}"
	PageQueryKey       = "page"
	ViewQueryKey       = "view"
	ViewGrid           = "grid"
	ViewTable          = "table"
)

// Project returns the project detail route.
func Project(projectID string) string {
	return ProjectsPrefix + escapeSegment(projectID)
}

// ProjectsPage returns the projects index route for a page and view mode.
func ProjectsPage(page int, view string) string {
	return Projects + listingQuery(page, view)
}

// ProjectsListingPage returns the listing fragment route for a page and view mode.
func ProjectsListingPage(page int, view string) string {
	return ProjectsListing + listingQuery(page, view)
}

// NormalizeView coerces unknown view modes to the grid default.
func NormalizeView(view string) string {
	if strings.TrimSpace(view) == ViewTable {
		return ViewTable
	}
	return ViewGrid
}

func listingQuery(page int, view string) string {
	values := url.Values{}
	if page > 1 {
		values.Set(PageQueryKey, strconv.Itoa(page))
	}
	if NormalizeView(view) != ViewGrid {
		values.Set(ViewQueryKey, ViewTable)
	}
	encoded := values.Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
