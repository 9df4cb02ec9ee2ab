package projects

import (
	"context"
	"time"
)

// Project is one project record shown by the studio. Read-only display
// data: the studio never mutates a project after it is created.
type Project struct {
	ID            string
	Name          string
	Description   string
	DocumentCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProjectPage is one page of projects plus the collection-wide total.
type ProjectPage struct {
	Projects   []Project
	TotalCount int
}

// CreateProjectInput carries the fields accepted by the creation flow.
type CreateProjectInput struct {
	Name        string
	Description string
}

// ProjectGateway loads and creates projects for web handlers.
type ProjectGateway interface {
	ListProjects(ctx context.Context, page int, pageSize int) (ProjectPage, error)
	GetProject(ctx context.Context, projectID string) (Project, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (Project, error)
}
