// Package modulehandler provides a composable base for studio web module handlers.
//
// Modules share common handler infrastructure for localization, page
// rendering, and error handling. This package extracts that shared scaffold
// so modules embed it rather than duplicating it.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	module "github.com/louisbranch/distilling.works/internal/services/web/module"
	webi18n "github.com/louisbranch/distilling.works/internal/services/web/platform/i18n"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/pagerender"
	"github.com/louisbranch/distilling.works/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/distilling.works/internal/services/web/templates"
)

// Base carries the shared request-scoped resolvers used by module handlers.
// Embed this in module handler structs to get standard localization, page
// rendering, and error writing without duplicating boilerplate.
type Base struct {
	resolveLanguage module.ResolveLanguage
}

// NewBase builds a handler base from an explicit language resolver.
func NewBase(resolveLanguage module.ResolveLanguage) Base {
	return Base{resolveLanguage: resolveLanguage}
}

// NewTestBase builds a handler base with a no-op resolver suitable for tests
// that do not exercise localization.
func NewTestBase() Base {
	return Base{
		resolveLanguage: func(*http.Request) string { return "" },
	}
}

// ResolveRequestLanguage returns the effective request language.
func (b Base) ResolveRequestLanguage(r *http.Request) string {
	if b.resolveLanguage == nil {
		return ""
	}
	return b.resolveLanguage(r)
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webtemplates.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r, b.resolveLanguage)
}

// RequestLocaleTag returns the resolved language tag for the request.
func (b Base) RequestLocaleTag(r *http.Request) language.Tag {
	return webi18n.ResolveTag(r, b.resolveLanguage)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, &b)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, &b)
}

// WritePage renders a full module page (HTMX-aware) with the given title,
// header, layout, and content fragment.
func (b Base) WritePage(
	w http.ResponseWriter,
	r *http.Request,
	title string,
	statusCode int,
	header *webtemplates.AppMainHeader,
	layout webtemplates.AppMainLayoutOptions,
	fragment templ.Component,
) {
	if err := pagerender.WriteModulePage(w, r, &b, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Header:     header,
		Layout:     layout,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}
