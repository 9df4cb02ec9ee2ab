package projectapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{BaseURL: "   "}); err == nil {
		t.Fatal("expected error for blank base url")
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": []any{}})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.ListProjects(context.Background(), 1, 20); err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if gotPath != "/api/v1/projects" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestDoRequestSetsHeaders(t *testing.T) {
	t.Parallel()

	var gotAccept, gotAgent, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": map[string]any{"id": "p1"}})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, UserAgent: "studio-test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.CreateProject(context.Background(), CreateProjectInput{Name: "Ledger"}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}
	if gotAgent != "studio-test" {
		t.Fatalf("User-Agent = %q", gotAgent)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
}

func TestDoRequestDecodesDetailError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Project not found"}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = client.GetProject(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Project not found" {
		t.Fatalf("Message = %q", apiErr.Message)
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound = false")
	}
	if StatusCode(err) != http.StatusNotFound {
		t.Fatalf("StatusCode(err) = %d", StatusCode(err))
	}
}

func TestDoRequestKeepsRawErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = client.ListProjects(context.Background(), 1, 20)
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream exploded" {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestStatusCodeReturnsZeroForOtherErrors(t *testing.T) {
	t.Parallel()

	if got := StatusCode(errors.New("dial tcp: connection refused")); got != 0 {
		t.Fatalf("StatusCode = %d", got)
	}
	if IsNotFound(nil) {
		t.Fatal("IsNotFound(nil) = true")
	}
}
