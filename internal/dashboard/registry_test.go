package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minify/internal/models"
)

func newTestRegistry(backend *fakeBackend, builds *int32) *Registry {
	return NewRegistry(time.Minute, func(_ context.Context, userID string) (*Store, error) {
		atomic.AddInt32(builds, 1)
		return NewStore(userID, models.CurrencyRUB, Deps{
			Transactions:  backend,
			Subscriptions: backend,
			Categories:    backend,
			Rates:         backend,
			Chat:          backend,
		}), nil
	})
}

func TestRegistrySessionIsCached(t *testing.T) {
	backend := &fakeBackend{}
	var builds int32
	reg := newTestRegistry(backend, &builds)
	ctx := context.Background()

	first, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)
	second, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&builds))
	assert.Equal(t, 1, backend.listCalls)
	assert.Equal(t, 1, reg.Len())
	assert.False(t, first.Snapshot().LoadedAt.IsZero())
}

func TestRegistrySeparatesUsers(t *testing.T) {
	var builds int32
	reg := newTestRegistry(&fakeBackend{}, &builds)

	a, err := reg.Session(context.Background(), "user-a")
	require.NoError(t, err)
	b, err := reg.Session(context.Background(), "user-b")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, "user-a", a.UserID())
	assert.Equal(t, "user-b", b.UserID())
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryConcurrentFirstAccess(t *testing.T) {
	var builds int32
	reg := newTestRegistry(&fakeBackend{}, &builds)

	const workers = 16
	stores := make([]*Store, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := reg.Session(context.Background(), "user-1")
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range stores[1:] {
		assert.Same(t, stores[0], s)
	}
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryDropAndInvalidate(t *testing.T) {
	backend := &fakeBackend{}
	var builds int32
	reg := newTestRegistry(backend, &builds)
	ctx := context.Background()

	first, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)

	reg.Drop("user-1")
	assert.Equal(t, 0, reg.Len())
	second, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	reg.Invalidate("user-1")
	_, err = reg.Session(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(&builds))
	assert.Equal(t, 3, backend.listCalls)
}

func TestRegistryFlush(t *testing.T) {
	var builds int32
	reg := newTestRegistry(&fakeBackend{}, &builds)
	ctx := context.Background()

	_, err := reg.Session(ctx, "user-a")
	require.NoError(t, err)
	_, err = reg.Session(ctx, "user-b")
	require.NoError(t, err)

	reg.Flush()
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryErrorsAreNotCached(t *testing.T) {
	backend := &fakeBackend{}
	var builds int32
	reg := newTestRegistry(backend, &builds)
	ctx := context.Background()

	backend.setFail(true)
	_, err := reg.Session(ctx, "user-1")
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, 0, reg.Len())

	backend.setFail(false)
	store, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryBuildError(t *testing.T) {
	boom := errors.New("no such user")
	reg := NewRegistry(time.Minute, func(context.Context, string) (*Store, error) {
		return nil, boom
	})

	_, err := reg.Session(context.Background(), "ghost")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryChatSurvivesInvalidate(t *testing.T) {
	backend := &fakeBackend{}
	var builds int32
	reg := newTestRegistry(backend, &builds)
	ctx := context.Background()

	store, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)
	_, err = store.SendChatPrompt(ctx, "Where does my money go?")
	require.NoError(t, err)

	reg.Invalidate("user-1")
	rebuilt, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)

	assert.NotSame(t, store, rebuilt)
	history := rebuilt.ChatHistory()
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatRoleUser, history[0].Role)
	assert.Equal(t, "Where does my money go?", history[0].Content)
	assert.Equal(t, models.ChatRoleAssistant, history[1].Role)
}

func TestRegistryLoadOutlivesCallerContext(t *testing.T) {
	var builds int32
	reg := newTestRegistry(&fakeBackend{}, &builds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store, err := reg.Session(ctx, "user-1")
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, 1, reg.Len())
}
