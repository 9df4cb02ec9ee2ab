package projects

import (
	"context"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/distilling.works/internal/services/web/platform/errors"
)

func TestServiceCreateProjectValidatesName(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)

	cases := []struct {
		name    string
		input   CreateProjectInput
		wantKey string
	}{
		{name: "blank name", input: CreateProjectInput{Name: "   "}, wantKey: "projects.error.name_required"},
		{name: "name too long", input: CreateProjectInput{Name: strings.Repeat("x", maxProjectNameLength+1)}, wantKey: "projects.error.name_too_long"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.createProject(context.Background(), tc.input)
			if err == nil {
				t.Fatal("createProject() expected error")
			}
			if kind := apperrors.KindOf(err); kind != apperrors.KindInvalidInput {
				t.Fatalf("kind = %q, want %q", kind, apperrors.KindInvalidInput)
			}
			if key := apperrors.LocalizationKey(err); key != tc.wantKey {
				t.Fatalf("localization key = %q, want %q", key, tc.wantKey)
			}
		})
	}
	if _, ok := gateway.lastCreated(); ok {
		t.Fatal("invalid input must not reach the gateway")
	}
}

func TestServiceCreateProjectTrimsInput(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	svc := newService(gateway)

	created, err := svc.createProject(context.Background(), CreateProjectInput{
		Name:        "  Alpha  ",
		Description: "  scans  ",
	})
	if err != nil {
		t.Fatalf("createProject() error = %v", err)
	}
	if created.Name != "Alpha" {
		t.Fatalf("created name = %q, want %q", created.Name, "Alpha")
	}
	input, _ := gateway.lastCreated()
	if input.Name != "Alpha" || input.Description != "scans" {
		t.Fatalf("gateway input = %+v, want trimmed fields", input)
	}
}

func TestServiceGetProjectRequiresID(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{})
	_, err := svc.getProject(context.Background(), "  ")
	if err == nil {
		t.Fatal("getProject() expected error")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Fatalf("kind = %q, want %q", kind, apperrors.KindNotFound)
	}
}

func TestServiceRedirectDecisionNeedsEmptySnapshot(t *testing.T) {
	t.Parallel()

	svc := newService(&fakeGateway{projects: sampleProjects(1)})
	snapshot, err := svc.listingPage(context.Background(), 1)
	if err != nil {
		t.Fatalf("listingPage() error = %v", err)
	}
	if svc.shouldRedirectToCreate(snapshot) {
		t.Fatal("non-empty snapshot must never redirect")
	}
}
