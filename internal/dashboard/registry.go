package dashboard

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"minify/internal/logger"
)

// BuildFunc constructs an unloaded store for a user.
type BuildFunc func(ctx context.Context, userID string) (*Store, error)

// Registry keeps one loaded Store per active user. Sessions expire after
// ttl without access and are rebuilt on the next request.
type Registry struct {
	sessions *cache.Cache
	group    singleflight.Group
	build    BuildFunc
}

// NewRegistry creates a registry whose sessions live for ttl after last use.
func NewRegistry(ttl time.Duration, build BuildFunc) *Registry {
	return &Registry{
		sessions: cache.New(ttl, 2*ttl),
		build:    build,
	}
}

// Session returns the user's store, building and loading it on first use.
// Concurrent first requests for the same user share one load, which is not
// cut short when the caller that started it goes away.
func (r *Registry) Session(ctx context.Context, userID string) (*Store, error) {
	if v, ok := r.sessions.Get(userID); ok {
		r.sessions.SetDefault(userID, v)
		return v.(*Store), nil
	}

	v, err, _ := r.group.Do(userID, func() (interface{}, error) {
		if v, ok := r.sessions.Get(userID); ok {
			return v, nil
		}
		loadCtx := context.WithoutCancel(ctx)
		store, err := r.build(loadCtx, userID)
		if err != nil {
			return nil, err
		}
		if err := store.Load(loadCtx); err != nil {
			return nil, err
		}
		r.sessions.SetDefault(userID, store)
		return store, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

// Drop tears down a user's session, e.g. on logout.
func (r *Registry) Drop(userID string) {
	r.sessions.Delete(userID)
	logger.Named("dashboard").Debugw("session dropped", "user_id", userID)
}

// Invalidate forces the user's next access to reload from storage. Used
// when data the store does not own, such as categories, changed.
func (r *Registry) Invalidate(userID string) {
	r.sessions.Delete(userID)
}

// Flush invalidates every session, e.g. after new exchange rates arrived.
func (r *Registry) Flush() {
	r.sessions.Flush()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}
