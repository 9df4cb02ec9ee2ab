package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

// ProjectCard is one project rendered in the listing grid and table views.
type ProjectCard struct {
	// ID is the project identifier.
	ID string
	// Name is the project display name.
	Name string
	// Description is the optional project summary.
	Description string
	// DetailURL is the project workspace destination.
	DetailURL string
	// CreatedAt is the formatted creation timestamp.
	CreatedAt string
	// UpdatedAt is the formatted last-update timestamp.
	UpdatedAt string
}

// ProjectsListingView carries listing fragment state for one page.
type ProjectsListingView struct {
	// Projects holds the page of project cards in display order.
	Projects []ProjectCard
	// View selects the grid or table rendering.
	View string
	// Page is the 1-based page currently displayed.
	Page int
	// TotalPages is the page count derived from the collection size.
	TotalPages int
	// TotalCount is the collection size reported by the project service.
	TotalCount int
}

// ProjectCreateFormValues captures form state for the project creation page.
type ProjectCreateFormValues struct {
	Name         string
	Description  string
	ErrorMessage string
}

// ProjectDetailView carries detail page state for one project. A zero
// DocumentCount means the remote API did not report one and the row is
// omitted.
type ProjectDetailView struct {
	ID            string
	Name          string
	Description   string
	DocumentCount int
	CreatedAt     string
	UpdatedAt     string
}

// ProjectsListingFragment renders a loaded listing page: the view toggle,
// the grid or table body, and pagination when more than one page exists.
func ProjectsListingFragment(view ProjectsListingView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mode := routepath.NormalizeView(view.View)
		if err := writeAll(w, `<section data-listing-view="`, mode, `">`); err != nil {
			return err
		}
		if err := writeViewToggle(w, view.Page, mode, loc); err != nil {
			return err
		}
		if mode == routepath.ViewTable {
			if err := writeProjectsTable(w, view.Projects, loc); err != nil {
				return err
			}
		} else {
			if err := writeProjectsGrid(w, view.Projects, loc); err != nil {
				return err
			}
		}
		if view.TotalPages > 1 {
			if err := writeListingPagination(w, view.Page, view.TotalPages, mode, loc); err != nil {
				return err
			}
		}
		return writeAll(w, `</section>`)
	})
}

// ProjectsEmptyFragment renders the empty-collection panel with the
// creation call to action.
func ProjectsEmptyFragment(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeAll(w,
			`<section class="hero py-16" data-empty-state="projects">`,
			`<div class="hero-content text-center"><div class="max-w-md">`,
			`<h2 class="text-2xl font-semibold">`, templ.EscapeString(T(loc, "projects.empty.title")), `</h2>`,
			`<p class="py-4 text-base-content/70">`, templ.EscapeString(T(loc, "projects.empty.message")), `</p>`,
			`<a class="btn btn-primary" href="`, routepath.ProjectsNew, `">`, templ.EscapeString(T(loc, "projects.empty.action")), `</a>`,
			`</div></div></section>`,
		)
	})
}

// ProjectCreateFragment renders the project creation form.
func ProjectCreateFragment(values ProjectCreateFormValues, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="card bg-base-200 max-w-xl"><div class="card-body">`); err != nil {
			return err
		}
		if message := strings.TrimSpace(values.ErrorMessage); message != "" {
			if err := writeAll(w, `<div role="alert" class="alert alert-error"><span>`, templ.EscapeString(message), `</span></div>`); err != nil {
				return err
			}
		}
		return writeAll(w,
			`<form method="POST" action="`, routepath.ProjectsCreate, `" class="flex flex-col gap-4">`,
			`<label class="form-control w-full">`,
			`<span class="label-text mb-1">`, templ.EscapeString(T(loc, "projects.new.name_label")), `</span>`,
			`<input type="text" name="name" value="`, templ.EscapeString(values.Name), `" placeholder="`, templ.EscapeString(T(loc, "projects.new.name_placeholder")), `" class="input input-bordered w-full" required maxlength="120"/>`,
			`</label>`,
			`<label class="form-control w-full">`,
			`<span class="label-text mb-1">`, templ.EscapeString(T(loc, "projects.new.description_label")), `</span>`,
			`<textarea name="description" rows="3" placeholder="`, templ.EscapeString(T(loc, "projects.new.description_placeholder")), `" class="textarea textarea-bordered w-full">`, templ.EscapeString(values.Description), `</textarea>`,
			`</label>`,
			`<div class="flex items-center gap-3">`,
			`<button type="submit" class="btn btn-primary">`, templ.EscapeString(T(loc, "projects.new.submit")), `</button>`,
			`<a class="btn btn-ghost" href="`, routepath.Projects, `">`, templ.EscapeString(T(loc, "projects.new.cancel")), `</a>`,
			`</div>`,
			`</form>`,
			`</div></div>`,
		)
	})
}

// ProjectDetailFragment renders the project workspace detail panel.
func ProjectDetailFragment(detail ProjectDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		description := strings.TrimSpace(detail.Description)
		descriptionClass := "text-base-content/80"
		if description == "" {
			description = T(loc, "projects.detail.description_empty")
			descriptionClass = "text-base-content/50 italic"
		}
		meta := []string{
			`<div class="mt-4 flex flex-wrap gap-6 text-sm text-base-content/60">`,
			`<span>`, templ.EscapeString(T(loc, "projects.detail.created")), `: `, templ.EscapeString(detail.CreatedAt), `</span>`,
			`<span>`, templ.EscapeString(T(loc, "projects.detail.updated")), `: `, templ.EscapeString(detail.UpdatedAt), `</span>`,
		}
		if detail.DocumentCount > 0 {
			meta = append(meta,
				`<span data-document-count="`, strconv.Itoa(detail.DocumentCount), `">`,
				templ.EscapeString(T(loc, "projects.detail.documents")), `: `, strconv.Itoa(detail.DocumentCount),
				`</span>`,
			)
		}
		meta = append(meta, `</div>`)

		parts := []string{
			`<div class="card bg-base-200" data-project-id="`, templ.EscapeString(detail.ID), `"><div class="card-body">`,
			`<p class="`, descriptionClass, `">`, templ.EscapeString(description), `</p>`,
		}
		parts = append(parts, meta...)
		parts = append(parts,
			`<div class="card-actions mt-6">`,
			`<a class="btn btn-ghost btn-sm" href="`, routepath.Projects, `">`, templ.EscapeString(T(loc, "projects.detail.back")), `</a>`,
			`</div>`,
			`</div></div>`,
		)
		return writeAll(w, parts...)
	})
}

func writeViewToggle(w io.Writer, page int, activeView string, loc Localizer) error {
	if err := writeAll(w, `<div class="mb-4 flex items-center justify-between gap-3">`,
		`<div class="join" data-view-toggle="true">`); err != nil {
		return err
	}
	if err := writeViewToggleOption(w, page, routepath.ViewGrid, activeView, T(loc, "projects.view_grid")); err != nil {
		return err
	}
	if err := writeViewToggleOption(w, page, routepath.ViewTable, activeView, T(loc, "projects.view_table")); err != nil {
		return err
	}
	return writeAll(w, `</div></div>`)
}

// writeViewToggleOption emits one toggle link. The hx-get URL targets the
// listing fragment endpoint while hx-push-url records the canonical page URL.
func writeViewToggleOption(w io.Writer, page int, view string, activeView string, label string) error {
	class := "btn btn-sm join-item"
	if view == activeView {
		class += " btn-active"
	}
	pageURL := routepath.ProjectsPage(page, view)
	fragmentURL := routepath.ProjectsListingPage(page, view)
	return writeAll(w,
		`<a class="`, class, `" href="`, templ.EscapeString(pageURL), `" hx-get="`, templ.EscapeString(fragmentURL), `" hx-push-url="`, templ.EscapeString(pageURL), `">`, templ.EscapeString(label), `</a>`,
	)
}

func writeProjectsGrid(w io.Writer, projects []ProjectCard, loc Localizer) error {
	if err := writeAll(w, `<div class="grid grid-cols-1 md:grid-cols-3 xl:grid-cols-4 2xl:grid-cols-5 gap-4">`); err != nil {
		return err
	}
	for _, project := range projects {
		if err := writeAll(w,
			`<a href="`, templ.EscapeString(project.DetailURL), `" class="group block">`,
			`<div class="card bg-base-200 shadow-sm transition group-hover:shadow-md"><div class="card-body">`,
			`<h2 class="card-title">`, templ.EscapeString(project.Name), `</h2>`,
		); err != nil {
			return err
		}
		if description := strings.TrimSpace(project.Description); description != "" {
			if err := writeAll(w, `<p class="text-sm text-base-content/70">`, templ.EscapeString(description), `</p>`); err != nil {
				return err
			}
		}
		if err := writeAll(w,
			`<p class="text-xs text-base-content/60">`, templ.EscapeString(T(loc, "projects.table.created")), `: `, templ.EscapeString(project.CreatedAt), `</p>`,
			`</div></div></a>`,
		); err != nil {
			return err
		}
	}
	return writeAll(w, `</div>`)
}

func writeProjectsTable(w io.Writer, projects []ProjectCard, loc Localizer) error {
	if err := writeAll(w,
		`<div class="overflow-x-auto"><table class="table table-zebra">`,
		`<thead><tr>`,
		`<th>`, templ.EscapeString(T(loc, "projects.table.name")), `</th>`,
		`<th>`, templ.EscapeString(T(loc, "projects.table.description")), `</th>`,
		`<th>`, templ.EscapeString(T(loc, "projects.table.created")), `</th>`,
		`<th>`, templ.EscapeString(T(loc, "projects.table.updated")), `</th>`,
		`<th><span class="sr-only">`, templ.EscapeString(T(loc, "projects.table.open")), `</span></th>`,
		`</tr></thead><tbody>`,
	); err != nil {
		return err
	}
	for _, project := range projects {
		if err := writeAll(w,
			`<tr>`,
			`<td><a href="`, templ.EscapeString(project.DetailURL), `" class="link link-hover font-medium">`, templ.EscapeString(project.Name), `</a></td>`,
			`<td class="text-base-content/70">`, templ.EscapeString(project.Description), `</td>`,
			`<td>`, templ.EscapeString(project.CreatedAt), `</td>`,
			`<td>`, templ.EscapeString(project.UpdatedAt), `</td>`,
			`<td class="text-right"><a class="btn btn-ghost btn-xs" href="`, templ.EscapeString(project.DetailURL), `">`, templ.EscapeString(T(loc, "projects.table.open")), `</a></td>`,
			`</tr>`,
		); err != nil {
			return err
		}
	}
	return writeAll(w, `</tbody></table></div>`)
}

func writeListingPagination(w io.Writer, page int, totalPages int, view string, loc Localizer) error {
	if err := writeAll(w, `<nav class="join mt-6" data-listing-pagination="true">`); err != nil {
		return err
	}
	if err := writePaginationStep(w, page-1, page > 1, view, T(loc, "projects.pagination.previous")); err != nil {
		return err
	}
	if err := writeAll(w,
		`<span class="btn btn-sm join-item pointer-events-none">`, templ.EscapeString(T(loc, "projects.pagination.page_status", page, totalPages)), `</span>`,
	); err != nil {
		return err
	}
	if err := writePaginationStep(w, page+1, page < totalPages, view, T(loc, "projects.pagination.next")); err != nil {
		return err
	}
	return writeAll(w, `</nav>`)
}

func writePaginationStep(w io.Writer, target int, enabled bool, view string, label string) error {
	if !enabled {
		return writeAll(w, `<span class="btn btn-sm join-item btn-disabled" aria-disabled="true">`, templ.EscapeString(label), `</span>`)
	}
	pageURL := routepath.ProjectsPage(target, view)
	fragmentURL := routepath.ProjectsListingPage(target, view)
	return writeAll(w,
		`<a class="btn btn-sm join-item" href="`, templ.EscapeString(pageURL), `" hx-get="`, templ.EscapeString(fragmentURL), `" hx-push-url="`, templ.EscapeString(pageURL), `">`, templ.EscapeString(label), `</a>`,
	)
}
