package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

// Pinned browser dependencies loaded by the app shell.
const (
	htmxScriptURL       = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"
	daisyUIStylesheet   = "https://cdn.jsdelivr.net/npm/daisyui@4.12.24/dist/full.min.css"
	tailwindCDNScript   = "https://cdn.tailwindcss.com"
	defaultMainClass    = "mx-auto w-full max-w-6xl px-4 py-6"
	appShellScriptPath  = routepath.StaticPrefix + "app-shell.js"
	appStylesheetPath   = routepath.StaticPrefix + "app.css"
	navProjectsLabelKey = "nav.projects"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// AppMainHeaderAction describes the primary call to action in a page header.
type AppMainHeaderAction struct {
	Label string
	URL   string
}

// AppMainHeader describes the heading block rendered above module content.
type AppMainHeader struct {
	Title       string
	Subtitle    string
	Breadcrumbs []BreadcrumbItem
	Action      *AppMainHeaderAction
}

// AppMainLayoutOptions adjusts the main content column for a page.
type AppMainLayoutOptions struct {
	// MainClass replaces the default content column classes when set.
	MainClass string
}

// AppToast is a one-time notice rendered as a toast overlay.
type AppToast struct {
	Kind    string
	Message string
}

// AppMainContentWithLayout renders the module header block and the child
// fragment. HTMX responses use this component alone so swaps replace the
// full main-content region including the header.
func AppMainContentWithLayout(header *AppMainHeader, layout AppMainLayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="`, templ.EscapeString(mainContentClass(layout)), `">`); err != nil {
			return err
		}
		if err := writeMainHeader(w, header); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</div>`)
	})
}

// AppLayoutWithMainHeaderAndLayout renders the full app shell document around
// a content fragment.
func AppLayoutWithMainHeaderAndLayout(title string, page PageContext, header *AppMainHeader, layout AppMainLayoutOptions, toast *AppToast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeDocumentHead(w, title, page); err != nil {
			return err
		}
		if err := writeAppNav(w, page); err != nil {
			return err
		}
		if err := writeAll(w, `<main id="main">`); err != nil {
			return err
		}
		if err := AppMainContentWithLayout(header, layout).Render(ctx, w); err != nil {
			return err
		}
		if err := writeAll(w, `</main>`); err != nil {
			return err
		}
		if err := writeToast(w, toast); err != nil {
			return err
		}
		return writeAll(w, `</body></html>`)
	})
}

func writeDocumentHead(w io.Writer, title string, page PageContext) error {
	lang := strings.TrimSpace(page.Lang)
	if lang == "" {
		lang = "en-US"
	}
	return writeAll(w,
		`<!doctype html><html lang="`, templ.EscapeString(lang), `" data-theme="dim"><head>`,
		`<meta charset="utf-8"/>`,
		`<meta name="viewport" content="width=device-width, initial-scale=1"/>`,
		`<meta name="description" content="`, templ.EscapeString(T(page.Loc, "meta.description")), `"/>`,
		`<title>`, templ.EscapeString(ComposePageTitle(title)), `</title>`,
		`<link rel="stylesheet" href="`, daisyUIStylesheet, `"/>`,
		`<script src="`, tailwindCDNScript, `"></script>`,
		`<link rel="stylesheet" href="`, appStylesheetPath, `"/>`,
		`<script src="`, htmxScriptURL, `" defer></script>`,
		`<script src="`, appShellScriptPath, `" defer></script>`,
		`</head><body class="min-h-screen bg-base-100" hx-target="#main" hx-swap="innerHTML">`,
	)
}

func writeAppNav(w io.Writer, page PageContext) error {
	appName := strings.TrimSpace(page.AppName)
	if appName == "" {
		appName = "Distilling.Works"
	}
	if err := writeAll(w,
		`<header class="navbar bg-base-200 shadow-sm">`,
		`<div class="flex-1">`,
		`<a href="`, routepath.Projects, `" hx-get="`, routepath.Projects, `" hx-push-url="true" class="btn btn-ghost text-lg font-semibold">`, templ.EscapeString(appName), `</a>`,
		`</div>`,
		`<nav class="flex items-center gap-2">`,
		`<a href="`, routepath.Projects, `" hx-get="`, routepath.Projects, `" hx-push-url="true" data-nav-item="true" class="btn btn-ghost btn-sm">`, templ.EscapeString(T(page.Loc, navProjectsLabelKey)), `</a>`,
	); err != nil {
		return err
	}
	if err := writeLanguageMenu(w, page); err != nil {
		return err
	}
	return writeAll(w, `</nav></header>`)
}

// writeLanguageMenu renders the language switcher. Selections navigate with
// a lang query param so the resolved language persists via cookie.
func writeLanguageMenu(w io.Writer, page PageContext) error {
	options := LanguageOptions(page)
	if len(options) == 0 {
		return nil
	}
	if err := writeAll(w,
		`<div class="dropdown dropdown-end">`,
		`<div tabindex="0" role="button" class="btn btn-ghost btn-sm">`, templ.EscapeString(ActiveLanguageLabel(page)), `</div>`,
		`<ul tabindex="0" class="dropdown-content menu bg-base-100 rounded-box z-10 w-32 p-2 shadow">`,
	); err != nil {
		return err
	}
	for _, option := range options {
		class := ""
		if option.Active {
			class = ` class="active"`
		}
		if err := writeAll(w,
			`<li><a href="`, templ.EscapeString(LanguageURL(page, option.Tag)), `"`, class, `>`, templ.EscapeString(option.Label), `</a></li>`,
		); err != nil {
			return err
		}
	}
	return writeAll(w, `</ul></div>`)
}

func writeMainHeader(w io.Writer, header *AppMainHeader) error {
	if header == nil {
		return nil
	}
	if err := writeBreadcrumbs(w, header.Breadcrumbs); err != nil {
		return err
	}
	if err := writeAll(w, `<div class="mb-5 flex items-center justify-between gap-3">`,
		`<h1 class="mb-0">`, templ.EscapeString(header.Title), `</h1>`); err != nil {
		return err
	}
	if header.Action != nil {
		if err := writeAll(w,
			`<a class="btn btn-primary btn-sm" href="`, templ.EscapeString(header.Action.URL), `">`, templ.EscapeString(header.Action.Label), `</a>`,
		); err != nil {
			return err
		}
	}
	if err := writeAll(w, `</div>`); err != nil {
		return err
	}
	if subtitle := strings.TrimSpace(header.Subtitle); subtitle != "" {
		return writeAll(w, `<p class="text-base-content/70 mb-5">`, templ.EscapeString(subtitle), `</p>`)
	}
	return nil
}

func writeBreadcrumbs(w io.Writer, items []BreadcrumbItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := writeAll(w, `<div class="breadcrumbs text-sm"><ul>`); err != nil {
		return err
	}
	for _, item := range items {
		if strings.TrimSpace(item.URL) != "" {
			if err := writeAll(w, `<li><a href="`, templ.EscapeString(item.URL), `">`, templ.EscapeString(item.Label), `</a></li>`); err != nil {
				return err
			}
			continue
		}
		if err := writeAll(w, `<li>`, templ.EscapeString(item.Label), `</li>`); err != nil {
			return err
		}
	}
	return writeAll(w, `</ul></div>`)
}

func writeToast(w io.Writer, toast *AppToast) error {
	if toast == nil || strings.TrimSpace(toast.Message) == "" {
		return nil
	}
	return writeAll(w,
		`<div id="app-toast" class="toast toast-end z-20">`,
		`<div class="alert `, toastAlertClass(toast.Kind), `"><span>`, templ.EscapeString(toast.Message), `</span></div>`,
		`</div>`,
	)
}

func toastAlertClass(kind string) string {
	switch strings.TrimSpace(kind) {
	case "success":
		return "alert-success"
	case "error":
		return "alert-error"
	default:
		return "alert-info"
	}
}

func mainContentClass(layout AppMainLayoutOptions) string {
	if class := strings.TrimSpace(layout.MainClass); class != "" {
		return class
	}
	return defaultMainClass
}

func writeAll(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}
