package projects

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
)

// maxProjectNameLength bounds the accepted project name size.
const maxProjectNameLength = 120

// service orchestrates gateway calls for project handlers. It owns the
// listing cache and the empty-collection redirect guard so all handlers of
// one mount share the same cached pages.
type service struct {
	gateway ProjectGateway
	listing *listingCache
	guard   *emptyRedirectGuard
}

func newService(gateway ProjectGateway) *service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return &service{
		gateway: gateway,
		listing: newListingCache(gateway, defaultPageSize),
		guard:   &emptyRedirectGuard{},
	}
}

// listingPage resolves one listing page through the cache.
func (s *service) listingPage(ctx context.Context, page int) (pageSnapshot, error) {
	return s.listing.Resolve(ctx, page)
}

// shouldRedirectToCreate reports whether an empty snapshot still owes the
// one-shot redirect to the creation flow.
func (s *service) shouldRedirectToCreate(snapshot pageSnapshot) bool {
	return snapshot.Empty() && s.guard.ShouldRedirect(snapshot.Generation)
}

func (s *service) getProject(ctx context.Context, projectID string) (Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return Project{}, apperrors.EK(apperrors.KindNotFound, "projects.error.not_found", "project id is required")
	}
	return s.gateway.GetProject(ctx, projectID)
}

// createProject validates and submits the creation form, then invalidates
// the listing cache so the next listing render reflects the new project.
func (s *service) createProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		return Project{}, apperrors.EK(apperrors.KindInvalidInput, "projects.error.name_required", "project name is required")
	}
	if len(input.Name) > maxProjectNameLength {
		return Project{}, apperrors.EK(apperrors.KindInvalidInput, "projects.error.name_too_long", "project name is too long")
	}
	created, err := s.gateway.CreateProject(ctx, input)
	if err != nil {
		return Project{}, err
	}
	s.listing.Invalidate()
	return created, nil
}
