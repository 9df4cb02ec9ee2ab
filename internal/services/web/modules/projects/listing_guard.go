package projects

import "sync"

// emptyRedirectGuard makes the empty-collection redirect a one-shot effect
// keyed to the became-empty snapshot generation: the first render of an
// empty generation navigates to the creation flow, repeat renders of the
// same generation fall through to the empty-state panel.
type emptyRedirectGuard struct {
	mu         sync.Mutex
	redirected uint64
}

// ShouldRedirect reports whether an empty snapshot generation still owes a
// redirect. It returns true at most once per generation.
func (g *emptyRedirectGuard) ShouldRedirect(generation uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if generation == 0 || generation <= g.redirected {
		return false
	}
	g.redirected = generation
	return true
}
