package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Meta
	message.SetString(lang, "meta.description", "Turn scanned documents into structured, searchable data.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
	message.SetString(lang, "nav.projects", "Projects")

	// Projects listing
	message.SetString(lang, "projects.title", "Projects")
	message.SetString(lang, "projects.subtitle", "Document extraction workspaces")
	message.SetString(lang, "projects.action_new", "New project")
	message.SetString(lang, "projects.view_grid", "Grid view")
	message.SetString(lang, "projects.view_table", "Table view")
	message.SetString(lang, "projects.listing.loading", "Loading projects...")
	message.SetString(lang, "projects.table.name", "Name")
	message.SetString(lang, "projects.table.description", "Description")
	message.SetString(lang, "projects.table.created", "Created")
	message.SetString(lang, "projects.table.updated", "Updated")
	message.SetString(lang, "projects.table.open", "Open")
	message.SetString(lang, "projects.empty.title", "No projects yet")
	message.SetString(lang, "projects.empty.message", "Create your first project to start extracting documents.")
	message.SetString(lang, "projects.empty.action", "Create project")
	message.SetString(lang, "projects.pagination.previous", "Previous")
	message.SetString(lang, "projects.pagination.next", "Next")
	message.SetString(lang, "projects.pagination.page_status", "Page %d of %d")

	// Project creation
	message.SetString(lang, "projects.new.title", "New project")
	message.SetString(lang, "projects.new.subtitle", "Name the workspace that will hold your documents.")
	message.SetString(lang, "projects.new.name_label", "Name")
	message.SetString(lang, "projects.new.name_placeholder", "Quarterly invoices")
	message.SetString(lang, "projects.new.description_label", "Description")
	message.SetString(lang, "projects.new.description_placeholder", "What documents will this project hold?")
	message.SetString(lang, "projects.new.submit", "Create project")
	message.SetString(lang, "projects.new.cancel", "Cancel")
	message.SetString(lang, "projects.create.notice_created", "Project created.")

	// Project detail
	message.SetString(lang, "projects.detail.created", "Created")
	message.SetString(lang, "projects.detail.updated", "Updated")
	message.SetString(lang, "projects.detail.back", "Back to projects")
	message.SetString(lang, "projects.detail.description_empty", "No description provided.")
	message.SetString(lang, "projects.detail.documents", "Documents")

	// Project errors
	message.SetString(lang, "projects.error.name_required", "Project name is required.")
	message.SetString(lang, "projects.error.name_too_long", "Project name must be 120 characters or fewer.")
	message.SetString(lang, "projects.error.create_failed", "Could not create the project. Check the form and try again.")
	message.SetString(lang, "projects.error.unavailable", "The project service is unavailable. Try again shortly.")
	message.SetString(lang, "projects.error.not_found", "Project not found.")

	// Shared error pages
	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.title_not_found", "Page not found")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for does not exist or may have moved.")
	message.SetString(lang, "web.error.message_server_error", "An unexpected error occurred. Please try again.")
	message.SetString(lang, "web.error.action_back_to_projects", "Back to projects")
}
