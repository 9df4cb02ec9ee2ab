package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/distilling.works/internal/services/web/routepath"
)

func TestHomeRedirectsRootToProjects(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Projects {
		t.Fatalf("Location = %q, want %q", got, routepath.Projects)
	}
}

func TestHomeRendersNotFoundForUnclaimedPaths(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
