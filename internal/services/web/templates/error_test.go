package templates

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/text/language"

	webi18n "github.com/louisbranch/distilling.works/internal/services/web/i18n"
)

func TestAppErrorStateRendersNotFound(t *testing.T) {
	loc := webi18n.Printer(language.English)
	var b strings.Builder
	if err := AppErrorState(http.StatusNotFound, loc).Render(context.Background(), &b); err != nil {
		t.Fatalf("AppErrorState() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `data-error-state="404"`) {
		t.Fatalf("expected 404 error state marker, got %q", got)
	}
	if !strings.Contains(got, `Page not found`) {
		t.Fatalf("expected not found heading, got %q", got)
	}
	if !strings.Contains(got, `class="btn btn-primary" href="/projects">Back to projects</a>`) {
		t.Fatalf("expected back to projects action, got %q", got)
	}
}

func TestAppErrorStateCoercesUnknownStatusToServerError(t *testing.T) {
	loc := webi18n.Printer(language.English)
	var b strings.Builder
	if err := AppErrorState(http.StatusTeapot, loc).Render(context.Background(), &b); err != nil {
		t.Fatalf("AppErrorState() = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `data-error-state="500"`) {
		t.Fatalf("expected 500 error state marker, got %q", got)
	}
	if !strings.Contains(got, `Something went wrong`) {
		t.Fatalf("expected server error heading, got %q", got)
	}
}

func TestAppErrorPageTitleMatchesStatus(t *testing.T) {
	loc := webi18n.Printer(language.English)
	if got := AppErrorPageTitle(http.StatusNotFound, loc); got != "Page not found" {
		t.Fatalf("AppErrorPageTitle(404) = %q, want %q", got, "Page not found")
	}
	if got := AppErrorPageTitle(http.StatusBadGateway, loc); got != "Something went wrong" {
		t.Fatalf("AppErrorPageTitle(502) = %q, want %q", got, "Something went wrong")
	}
}
