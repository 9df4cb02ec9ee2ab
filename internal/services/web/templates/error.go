package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackToProjectsTextKey = "web.error.action_back_to_projects"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the shared error panel for 404 and 5xx responses.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		status := normalizeAppErrorStatus(statusCode)
		return writeAll(w,
			`<section class="hero py-16" data-error-state="`, strconv.Itoa(status), `">`,
			`<div class="hero-content text-center"><div class="max-w-md">`,
			`<p class="text-5xl font-bold">`, strconv.Itoa(status), `</p>`,
			`<h2 class="mt-4 text-2xl font-semibold">`, templ.EscapeString(appErrorHeading(status, loc)), `</h2>`,
			`<p class="py-4 text-base-content/70">`, templ.EscapeString(appErrorMessage(status, loc)), `</p>`,
			`<a class="btn btn-primary" href="`, routepath.Projects, `">`, templ.EscapeString(T(loc, appErrorBackToProjectsTextKey)), `</a>`,
			`</div></div></section>`,
		)
	})
}

func appErrorHeading(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorHeadingNotFoundKey)
	}
	return T(loc, appErrorHeadingServerErrKey)
}

func appErrorMessage(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorMessageNotFoundKey)
	}
	return T(loc, appErrorMessageServerErrKey)
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
