package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
)

// fakeBackend keeps a real membership set behind the wishlist endpoints
// so the store's reload-after-mutation path is exercised end to end.
type fakeBackend struct {
	mu      sync.Mutex
	members map[string]bool
	delay   time.Duration
	gets    int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /wishlist", func(w http.ResponseWriter, r *http.Request) {
		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		f.mu.Lock()
		f.gets++
		items := []api.WishlistItem{}
		for id := range f.members {
			items = append(items, api.WishlistItem{ID: "w-" + id, Product: api.Product{ID: id}})
		}
		f.mu.Unlock()
		writeEnv(w, api.Wishlist{Items: items, Count: len(items)})
	})
	mux.HandleFunc("POST /wishlist/items", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProductID string `json:"productId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.members[body.ProductID] = true
		f.mu.Unlock()
		writeEnv(w, struct{}{})
	})
	mux.HandleFunc("DELETE /wishlist/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		delete(f.members, r.PathValue("id"))
		f.mu.Unlock()
		writeEnv(w, struct{}{})
	})
	return mux
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeEnv(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(api.Envelope{Success: true, Data: raw, StatusCode: 200})
}

func newStore(t *testing.T, f *fakeBackend) *Wishlist {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	c := api.NewClient(srv.URL, 2*time.Second, discardLogger())
	return NewWishlist(api.NewWishlistService(c))
}

func TestAuthLifecycle(t *testing.T) {
	f := &fakeBackend{members: map[string]bool{"p1": true}}
	w := newStore(t, f)

	require.NoError(t, w.OnAuthChange(context.Background(), true, "cust-1"))
	snap := w.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, 1, snap.Count)
	assert.True(t, w.Contains("p1"))

	gets := f.gets
	require.NoError(t, w.OnAuthChange(context.Background(), false, ""))
	snap = w.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Zero(t, snap.Count)
	assert.Empty(t, snap.Items)
	assert.Equal(t, gets, f.gets, "sign-out clears synchronously, no backend call")
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	f := &fakeBackend{members: map[string]bool{}}
	w := newStore(t, f)
	ctx := context.Background()
	require.NoError(t, w.OnAuthChange(ctx, true, "cust-1"))

	require.NoError(t, w.Toggle(ctx, "p9"))
	assert.True(t, w.Contains("p9"))

	require.NoError(t, w.Toggle(ctx, "p9"))
	assert.False(t, w.Contains("p9"), "two awaited toggles land on the original state")
	assert.Zero(t, w.Snapshot().Count)
}

func TestMutationFailureKeepsStateAndReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			raw, _ := json.Marshal(struct{}{})
			_ = json.NewEncoder(w).Encode(api.Envelope{Success: false, Message: "quota exceeded", Data: raw, StatusCode: 409})
			return
		}
		writeEnv(w, api.Wishlist{Items: []api.WishlistItem{{ID: "w1", Product: api.Product{ID: "p1"}}}, Count: 1})
	}))
	defer srv.Close()

	c := api.NewClient(srv.URL, 2*time.Second, discardLogger())
	w := NewWishlist(api.NewWishlistService(c))
	ctx := context.Background()
	require.NoError(t, w.OnAuthChange(ctx, true, "cust-1"))

	err := w.Add(ctx, "p2")
	require.Error(t, err, "error rethrown for callers further up")

	snap := w.Snapshot()
	assert.Equal(t, 1, snap.Count, "failed mutation leaves prior state untouched")
	assert.NotEmpty(t, snap.Err)
}

func TestSignOutInvalidatesInFlightReload(t *testing.T) {
	f := &fakeBackend{members: map[string]bool{"p1": true}, delay: 50 * time.Millisecond}
	w := newStore(t, f)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.OnAuthChange(ctx, true, "cust-1") // slow reload in flight
	}()
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, w.OnAuthChange(ctx, false, ""))
	<-done

	snap := w.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.Items, "stale reload must not repopulate a signed-out store")
}

func TestSubscribeSeesChanges(t *testing.T) {
	f := &fakeBackend{members: map[string]bool{}}
	w := newStore(t, f)
	ctx := context.Background()

	ch, unsubscribe := w.Subscribe()
	defer unsubscribe()

	require.NoError(t, w.OnAuthChange(ctx, true, "cust-1"))
	require.NoError(t, w.Add(ctx, "p3"))

	var last WishlistSnapshot
	for {
		select {
		case snap := <-ch:
			last = snap
			if snap.Count == 1 && !snap.Loading {
				assert.Equal(t, "p3", snap.Items[0].Product.ID)
				return
			}
		case <-time.After(time.Second):
			t.Fatalf("never observed the added item; last snapshot: %+v", last)
		}
	}
}

func TestRegistryPrimesOnceAndLogsPrimeFailure(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(srv.URL, 2*time.Second, discardLogger())

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	reg := NewRegistry(api.NewWishlistService(c), log)
	w := reg.For(ctx, "cust-1")

	snap := w.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.NotEmpty(t, snap.Err, "prime failure lands in the error slot")
	assert.Contains(t, buf.String(), "wishlist_prime_failed")
	assert.Contains(t, buf.String(), "cust-1")

	buf.Reset()
	again := reg.For(ctx, "cust-1")
	assert.Same(t, w, again, "one store per customer identity")
	assert.Empty(t, buf.String(), "no re-prime on later lookups")
}
