package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Loading renders the shared loading ring indicator.
func Loading() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeAll(w, `<span class="loading loading-ring loading-md"></span>`)
	})
}

// LazyLoad renders a placeholder that HTMX swaps for the content served at
// url once the page loads. The swap target is inherited from the document
// body, so the response replaces the whole main-content region the same way
// in-page fragment links do. srMessage is announced to screen readers while
// the indicator spins.
func LazyLoad(url string, srMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<div hx-get="`, templ.EscapeString(url), `" hx-trigger="load" class="flex justify-center py-10">`,
		); err != nil {
			return err
		}
		if err := Loading().Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `<span class="sr-only">`, templ.EscapeString(srMessage), `</span></div>`)
	})
}
