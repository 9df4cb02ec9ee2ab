package projects

import (
	"context"

	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListProjects(context.Context, int, int) (ProjectPage, error) {
	return ProjectPage{}, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}

func (unavailableGateway) GetProject(context.Context, string) (Project, error) {
	return Project{}, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}

func (unavailableGateway) CreateProject(context.Context, CreateProjectInput) (Project, error) {
	return Project{}, apperrors.E(apperrors.KindUnavailable, "project service is not configured")
}
