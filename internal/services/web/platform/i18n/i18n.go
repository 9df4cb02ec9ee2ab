// Package i18n resolves the request localizer shared by module handlers.
package i18n

import (
	"net/http"

	platformi18n "github.com/louisbranch/distilling.works/internal/platform/i18n"
	webi18n "github.com/louisbranch/distilling.works/internal/services/web/i18n"
	module "github.com/louisbranch/distilling.works/internal/services/web/module"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats localized copy for studio templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag resolves the effective language tag for a request. A module-level
// resolver takes precedence; otherwise the request chain (query, cookie,
// Accept-Language) decides.
func ResolveTag(r *http.Request, resolveLanguage module.ResolveLanguage) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	tag, _ := webi18n.ResolveTag(r)
	return tag
}

// ResolveLocalizer resolves the localizer and language for a request, persisting
// an explicit language selection to the session cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage module.ResolveLanguage) (Localizer, string) {
	if resolveLanguage != nil {
		if tag, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			return webi18n.Printer(tag), tag.String()
		}
	}
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}
