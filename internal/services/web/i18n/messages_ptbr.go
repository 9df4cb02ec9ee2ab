package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Meta
	message.SetString(lang, "meta.description", "Transforme documentos digitalizados em dados estruturados e pesquisáveis.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
	message.SetString(lang, "nav.projects", "Projetos")

	// Projects listing
	message.SetString(lang, "projects.title", "Projetos")
	message.SetString(lang, "projects.subtitle", "Espaços de extração de documentos")
	message.SetString(lang, "projects.action_new", "Novo projeto")
	message.SetString(lang, "projects.view_grid", "Visão em grade")
	message.SetString(lang, "projects.view_table", "Visão em tabela")
	message.SetString(lang, "projects.listing.loading", "Carregando projetos...")
	message.SetString(lang, "projects.table.name", "Nome")
	message.SetString(lang, "projects.table.description", "Descrição")
	message.SetString(lang, "projects.table.created", "Criado em")
	message.SetString(lang, "projects.table.updated", "Atualizado em")
	message.SetString(lang, "projects.table.open", "Abrir")
	message.SetString(lang, "projects.empty.title", "Nenhum projeto ainda")
	message.SetString(lang, "projects.empty.message", "Crie seu primeiro projeto para começar a extrair documentos.")
	message.SetString(lang, "projects.empty.action", "Criar projeto")
	message.SetString(lang, "projects.pagination.previous", "Anterior")
	message.SetString(lang, "projects.pagination.next", "Próxima")
	message.SetString(lang, "projects.pagination.page_status", "Página %d de %d")

	// Project creation
	message.SetString(lang, "projects.new.title", "Novo projeto")
	message.SetString(lang, "projects.new.subtitle", "Nomeie o espaço que vai guardar seus documentos.")
	message.SetString(lang, "projects.new.name_label", "Nome")
	message.SetString(lang, "projects.new.name_placeholder", "Notas fiscais do trimestre")
	message.SetString(lang, "projects.new.description_label", "Descrição")
	message.SetString(lang, "projects.new.description_placeholder", "Quais documentos este projeto vai guardar?")
	message.SetString(lang, "projects.new.submit", "Criar projeto")
	message.SetString(lang, "projects.new.cancel", "Cancelar")
	message.SetString(lang, "projects.create.notice_created", "Projeto criado.")

	// Project detail
	message.SetString(lang, "projects.detail.created", "Criado em")
	message.SetString(lang, "projects.detail.updated", "Atualizado em")
	message.SetString(lang, "projects.detail.back", "Voltar para projetos")
	message.SetString(lang, "projects.detail.description_empty", "Nenhuma descrição informada.")
	message.SetString(lang, "projects.detail.documents", "Documentos")

	// Project errors
	message.SetString(lang, "projects.error.name_required", "O nome do projeto é obrigatório.")
	message.SetString(lang, "projects.error.name_too_long", "O nome do projeto deve ter no máximo 120 caracteres.")
	message.SetString(lang, "projects.error.create_failed", "Não foi possível criar o projeto. Revise o formulário e tente novamente.")
	message.SetString(lang, "projects.error.unavailable", "O serviço de projetos está indisponível. Tente novamente em instantes.")
	message.SetString(lang, "projects.error.not_found", "Projeto não encontrado.")

	// Shared error pages
	message.SetString(lang, "web.error.page_title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.page_title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.message_not_found", "A página que você procura não existe ou pode ter sido movida.")
	message.SetString(lang, "web.error.message_server_error", "Ocorreu um erro inesperado. Tente novamente.")
	message.SetString(lang, "web.error.action_back_to_projects", "Voltar para projetos")
}
