package projects

import "testing"

func TestEmptyRedirectGuardFiresOncePerGeneration(t *testing.T) {
	t.Parallel()

	guard := &emptyRedirectGuard{}
	if !guard.ShouldRedirect(1) {
		t.Fatal("first empty generation should redirect")
	}
	for idx := 0; idx < 3; idx++ {
		if guard.ShouldRedirect(1) {
			t.Fatal("repeat renders of the same generation must not redirect")
		}
	}
}

func TestEmptyRedirectGuardFiresForNewerGeneration(t *testing.T) {
	t.Parallel()

	guard := &emptyRedirectGuard{}
	if !guard.ShouldRedirect(2) {
		t.Fatal("generation 2 should redirect")
	}
	if guard.ShouldRedirect(2) {
		t.Fatal("generation 2 already redirected")
	}
	if !guard.ShouldRedirect(5) {
		t.Fatal("a newer became-empty generation should redirect again")
	}
}

func TestEmptyRedirectGuardIgnoresZeroGeneration(t *testing.T) {
	t.Parallel()

	guard := &emptyRedirectGuard{}
	if guard.ShouldRedirect(0) {
		t.Fatal("zero generation marks an unloaded snapshot, never a redirect")
	}
}

func TestEmptyRedirectGuardIgnoresOlderGenerations(t *testing.T) {
	t.Parallel()

	guard := &emptyRedirectGuard{}
	if !guard.ShouldRedirect(4) {
		t.Fatal("generation 4 should redirect")
	}
	if guard.ShouldRedirect(3) {
		t.Fatal("older generations must not redirect after a newer one fired")
	}
}
