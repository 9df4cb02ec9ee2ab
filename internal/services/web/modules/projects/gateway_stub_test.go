package projects

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
)

// fakeGateway serves canned pages and counts list calls.
type fakeGateway struct {
	projects []Project
	listErr  error
	getErr   error

	mu        sync.Mutex
	listCalls atomic.Int64
	created   []CreateProjectInput
}

func (g *fakeGateway) ListProjects(_ context.Context, page int, pageSize int) (ProjectPage, error) {
	g.listCalls.Add(1)
	if g.listErr != nil {
		return ProjectPage{}, g.listErr
	}
	start := (page - 1) * pageSize
	if start > len(g.projects) {
		start = len(g.projects)
	}
	end := start + pageSize
	if end > len(g.projects) {
		end = len(g.projects)
	}
	return ProjectPage{Projects: g.projects[start:end], TotalCount: len(g.projects)}, nil
}

func (g *fakeGateway) GetProject(_ context.Context, projectID string) (Project, error) {
	if g.getErr != nil {
		return Project{}, g.getErr
	}
	for _, project := range g.projects {
		if project.ID == projectID {
			return project, nil
		}
	}
	return Project{}, apperrors.EK(apperrors.KindNotFound, "projects.error.not_found", "project not found")
}

func (g *fakeGateway) CreateProject(_ context.Context, input CreateProjectInput) (Project, error) {
	g.mu.Lock()
	g.created = append(g.created, input)
	g.mu.Unlock()
	return Project{
		ID:          fmt.Sprintf("proj-%d", len(g.created)),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func (g *fakeGateway) lastCreated() (CreateProjectInput, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.created) == 0 {
		return CreateProjectInput{}, false
	}
	return g.created[len(g.created)-1], true
}

func sampleProjects(count int) []Project {
	projects := make([]Project, 0, count)
	for idx := 1; idx <= count; idx++ {
		projects = append(projects, Project{
			ID:        fmt.Sprintf("p%d", idx),
			Name:      fmt.Sprintf("Project %d", idx),
			CreatedAt: time.Date(2026, 1, idx%28+1, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 2, idx%28+1, 17, 45, 0, 0, time.UTC),
		})
	}
	return projects
}
