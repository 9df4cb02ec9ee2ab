package projectapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Project is one project record returned by the catalog API.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	DocumentCount int       `json:"document_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectList is one page of projects plus the collection-wide total.
type ProjectList struct {
	Projects   []Project
	TotalCount int
}

// CreateProjectInput is the request body for creating a project.
type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListProjects fetches one page of projects.
func (c *Client) ListProjects(ctx context.Context, page int, pageSize int) (ProjectList, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var env envelope
	if err := c.doRequest(ctx, http.MethodGet, "/projects?"+query.Encode(), nil, &env); err != nil {
		return ProjectList{}, err
	}

	var projects []Project
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &projects); err != nil {
			return ProjectList{}, fmt.Errorf("decode project list data: %w", err)
		}
	}
	totalCount := len(projects)
	if env.TotalCount != nil {
		totalCount = *env.TotalCount
	}
	return ProjectList{Projects: projects, TotalCount: totalCount}, nil
}

// GetProject fetches a single project by id.
func (c *Client) GetProject(ctx context.Context, id string) (Project, error) {
	var env envelope
	if err := c.doRequest(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil, &env); err != nil {
		return Project{}, err
	}
	var project Project
	if err := json.Unmarshal(env.Data, &project); err != nil {
		return Project{}, fmt.Errorf("decode project data: %w", err)
	}
	return project, nil
}

// CreateProject creates a new project and returns the stored record.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (Project, error) {
	var env envelope
	if err := c.doRequest(ctx, http.MethodPost, "/projects", input, &env); err != nil {
		return Project{}, err
	}
	var project Project
	if err := json.Unmarshal(env.Data, &project); err != nil {
		return Project{}, fmt.Errorf("decode created project data: %w", err)
	}
	return project, nil
}
