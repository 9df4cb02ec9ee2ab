package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/distilling.works/internal/clients/projectapi"
)

type stubProjectClient struct{}

func (stubProjectClient) ListProjects(context.Context, int, int) (projectapi.ProjectList, error) {
	return projectapi.ProjectList{}, nil
}

func (stubProjectClient) GetProject(context.Context, string) (projectapi.Project, error) {
	return projectapi.Project{}, nil
}

func (stubProjectClient) CreateProject(context.Context, projectapi.CreateProjectInput) (projectapi.Project, error) {
	return projectapi.Project{}, nil
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatal("NewServer() accepted empty address")
	}
}

func TestNewHandlerServesHealthEndpoint(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{ProjectClient: stubProjectClient{}})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "OK" {
		t.Fatalf("body = %q, want %q", rr.Body.String(), "OK")
	}
}

func TestNewHandlerHealthJSONReportsModuleStates(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{ProjectClient: stubProjectClient{}})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var payload struct {
		Status  string          `json:"status"`
		Modules map[string]bool `json:"modules"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload.Status != "ok" {
		t.Fatalf("status = %q, want ok", payload.Status)
	}
	if !payload.Modules["projects"] {
		t.Fatalf("projects module unhealthy in %v", payload.Modules)
	}
}

func TestNewHandlerHealthJSONDegradesWithoutClient(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rr.Body.String(), `"degraded"`) {
		t.Fatalf("body missing degraded status: %q", rr.Body.String())
	}
}

func TestNewHandlerRedirectsRootToProjects(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{ProjectClient: stubProjectClient{}})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/projects" {
		t.Fatalf("Location = %q, want /projects", got)
	}
}

func TestNewHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{ProjectClient: stubProjectClient{}})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/app.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("content type = %q, want css", rr.Header().Get("Content-Type"))
	}
}

func TestNewHandlerEchoesRequestID(t *testing.T) {
	t.Parallel()

	handler, err := NewHandler(Config{ProjectClient: stubProjectClient{}})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	req.Header.Set("X-Request-ID", "req-42")
	handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("X-Request-ID = %q, want req-42", got)
	}
}

func TestServerListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr:      "127.0.0.1:0",
		ProjectClient: stubProjectClient{},
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
