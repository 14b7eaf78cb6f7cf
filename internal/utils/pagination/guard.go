package pagination

import (
	"context"
	"errors"
	"sync"

	"github.com/SscSPs/ads_resale_dashboard/internal/apperrors"
)

// Guard makes sure only the newest request per key is still in flight. When a
// request starts for a key that already has one running, the older request's
// context is cancelled with apperrors.ErrSuperseded as its cause.
type Guard struct {
	mu       sync.Mutex
	seq      uint64
	inflight map[string]guardEntry
}

type guardEntry struct {
	id     uint64
	cancel context.CancelCauseFunc
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]guardEntry)}
}

// Begin registers a request for key and returns its context and a release
// func that must be called when the request finishes.
func (g *Guard) Begin(parent context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)

	g.mu.Lock()
	if prev, ok := g.inflight[key]; ok {
		prev.cancel(apperrors.ErrSuperseded)
	}
	g.seq++
	id := g.seq
	g.inflight[key] = guardEntry{id: id, cancel: cancel}
	g.mu.Unlock()

	release := func() {
		g.mu.Lock()
		if cur, ok := g.inflight[key]; ok && cur.id == id {
			delete(g.inflight, key)
		}
		g.mu.Unlock()
		cancel(nil)
	}
	return ctx, release
}

// Superseded reports whether ctx was cancelled because a newer request for
// the same key started.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), apperrors.ErrSuperseded)
}

// Err returns apperrors.ErrSuperseded if ctx was superseded, otherwise err.
// Services call it on the way out so a late result is never mistaken for the
// current one.
func Err(ctx context.Context, err error) error {
	if Superseded(ctx) {
		return apperrors.ErrSuperseded
	}
	return err
}

// InFlight is the number of keys with a running request.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
