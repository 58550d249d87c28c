package services

import (
	"context"
	"sync"

	"github.com/SscSPs/visa_portal_backend/internal/apperrors"
)

// SelectionTracker orders display-currency selections per key (a user ID).
// Starting a new selection cancels the previous one, and only the most
// recent selection may commit its result.
type SelectionTracker struct {
	mu       sync.Mutex
	next     uint64
	inflight map[string]selection
}

type selection struct {
	gen    uint64
	cancel context.CancelCauseFunc
}

// NewSelectionTracker creates an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{inflight: make(map[string]selection)}
}

// Begin starts a selection for key. Any selection already in flight for key
// is cancelled with apperrors.ErrSuperseded as its cause. The returned
// release func must be called once the caller is done.
func (t *SelectionTracker) Begin(ctx context.Context, key string) (context.Context, uint64, func()) {
	ctx, cancel := context.WithCancelCause(ctx)

	t.mu.Lock()
	if prev, ok := t.inflight[key]; ok {
		prev.cancel(apperrors.ErrSuperseded)
	}
	t.next++
	gen := t.next
	t.inflight[key] = selection{gen: gen, cancel: cancel}
	t.mu.Unlock()

	release := func() {
		t.mu.Lock()
		if cur, ok := t.inflight[key]; ok && cur.gen == gen {
			delete(t.inflight, key)
		}
		t.mu.Unlock()
		cancel(nil)
	}
	return ctx, gen, release
}

// Commit reports whether gen is still the latest selection for key.
// It returns apperrors.ErrSuperseded otherwise.
func (t *SelectionTracker) Commit(key string, gen uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if cur, ok := t.inflight[key]; !ok || cur.gen != gen {
		return apperrors.ErrSuperseded
	}
	return nil
}

