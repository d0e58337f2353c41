package team

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/teamdesk/pkg/idx"
)

// Registry maps view session ids to live views.
type Registry struct {
	opts Options

	mu    sync.Mutex
	views map[idx.ID]*View
}

func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Registry{
		opts:  opts,
		views: make(map[idx.ID]*View),
	}
}

// Get returns owner's view for raw. Any other id, whether malformed, unknown
// or opened by a different operator, gets a freshly minted view which is
// mounted before it is returned. created reports whether a new view was made;
// its ID must then be handed back to the client.
func (r *Registry) Get(ctx context.Context, raw, owner string) (v *View, created bool, err error) {
	if v, ok := r.Lookup(raw, owner); ok {
		v.Touch()
		return v, false, nil
	}

	id := idx.New()
	v = NewView(id, r.opts)
	v.owner = owner

	r.mu.Lock()
	r.views[id] = v
	r.mu.Unlock()

	r.opts.Logger.Debug("view created",
		slog.String("view_id", id.String()),
		slog.String("operator", owner),
	)

	if err := v.Send(ctx, Mounted{}); err != nil {
		r.remove(id)
		v.Close()
		return nil, false, err
	}
	return v, true, nil
}

// Lookup returns owner's existing view without creating one.
func (r *Registry) Lookup(raw, owner string) (*View, bool) {
	id, err := idx.Parse(raw)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	v, ok := r.views[id]
	r.mu.Unlock()

	if !ok {
		return nil, false
	}
	if v.owner != owner {
		r.opts.Logger.Warn("view session presented by another operator",
			slog.String("view_id", id.String()),
			slog.String("operator", owner),
		)
		return nil, false
	}
	return v, true
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// EvictIdle closes views not used since cutoff and returns how many it closed.
func (r *Registry) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	var stale []*View
	for id, v := range r.views {
		if v.LastUsed().Before(cutoff) {
			stale = append(stale, v)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	return len(stale)
}

// Close shuts down every view.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[idx.ID]*View)
	r.mu.Unlock()

	for _, v := range views {
		v.Close()
	}
}

func (r *Registry) remove(id idx.ID) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}
