package projects

import (
	"context"
	"strings"

	"github.com/louisbranch/distilling.works/internal/clients/projectapi"
	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
)

// ProjectClient is the slice of the project API client this module consumes.
// *projectapi.Client satisfies it.
type ProjectClient interface {
	ListProjects(ctx context.Context, page int, pageSize int) (projectapi.ProjectList, error)
	GetProject(ctx context.Context, id string) (projectapi.Project, error)
	CreateProject(ctx context.Context, input projectapi.CreateProjectInput) (projectapi.Project, error)
}

// NewAPIGateway builds the production projects gateway over the project API
// client. A nil client yields the degraded gateway.
func NewAPIGateway(client ProjectClient) ProjectGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return apiGateway{client: client}
}

type apiGateway struct {
	client ProjectClient
}

func (g apiGateway) ListProjects(ctx context.Context, page int, pageSize int) (ProjectPage, error) {
	list, err := g.client.ListProjects(ctx, page, pageSize)
	if err != nil {
		return ProjectPage{}, mapListProjectsError(err)
	}
	projects := make([]Project, 0, len(list.Projects))
	for _, item := range list.Projects {
		projects = append(projects, mapProject(item))
	}
	return ProjectPage{Projects: projects, TotalCount: list.TotalCount}, nil
}

func (g apiGateway) GetProject(ctx context.Context, projectID string) (Project, error) {
	project, err := g.client.GetProject(ctx, projectID)
	if err != nil {
		return Project{}, mapGetProjectError(err)
	}
	return mapProject(project), nil
}

func (g apiGateway) CreateProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	created, err := g.client.CreateProject(ctx, projectapi.CreateProjectInput{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return Project{}, mapCreateProjectError(err)
	}
	return mapProject(created), nil
}

func mapProject(project projectapi.Project) Project {
	return Project{
		ID:            strings.TrimSpace(project.ID),
		Name:          project.Name,
		Description:   project.Description,
		DocumentCount: project.DocumentCount,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func mapListProjectsError(err error) error {
	if err == nil {
		return nil
	}
	switch apperrors.KindFromHTTPStatus(projectapi.StatusCode(err)) {
	case apperrors.KindInvalidInput:
		return apperrors.E(apperrors.KindInvalidInput, "failed to list projects")
	default:
		return apperrors.EK(apperrors.KindUnavailable, "projects.error.unavailable", "failed to list projects")
	}
}

func mapGetProjectError(err error) error {
	if err == nil {
		return nil
	}
	switch apperrors.KindFromHTTPStatus(projectapi.StatusCode(err)) {
	case apperrors.KindNotFound:
		return apperrors.EK(apperrors.KindNotFound, "projects.error.not_found", "project not found")
	case apperrors.KindInvalidInput:
		return apperrors.E(apperrors.KindInvalidInput, "failed to load project")
	default:
		return apperrors.EK(apperrors.KindUnavailable, "projects.error.unavailable", "failed to load project")
	}
}

func mapCreateProjectError(err error) error {
	if err == nil {
		return nil
	}
	switch apperrors.KindFromHTTPStatus(projectapi.StatusCode(err)) {
	case apperrors.KindInvalidInput:
		return apperrors.EK(apperrors.KindInvalidInput, "projects.error.create_failed", "failed to create project")
	default:
		return apperrors.EK(apperrors.KindUnavailable, "projects.error.unavailable", "failed to create project")
	}
}
