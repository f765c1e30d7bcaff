// Package store holds the long-lived client state that outlives a
// single page render: the wishlist. State is kept per customer, changed
// only through the store's own methods, and fanned out to subscribers.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
)

// WishlistSnapshot is what consumers (badge, pages) render from.
type WishlistSnapshot struct {
	Items         []api.WishlistItem
	Count         int
	Loading       bool
	Err           string
	Authenticated bool
}

// Wishlist mirrors one customer's wishlist. Consistency is reached by
// reloading the full list after every mutation rather than patching
// incrementally; a generation counter makes sure a slow reload from an
// earlier mutation cannot overwrite a newer one.
type Wishlist struct {
	svc *api.WishlistService

	mu         sync.Mutex
	customerID string
	authed     bool
	items      []api.WishlistItem
	count      int
	loading    bool
	errMsg     string
	gen        uint64

	subs    map[int]chan WishlistSnapshot
	nextSub int
}

func NewWishlist(svc *api.WishlistService) *Wishlist {
	return &Wishlist{
		svc:  svc,
		subs: make(map[int]chan WishlistSnapshot),
	}
}

// OnAuthChange drives the lifecycle: becoming authenticated fetches the
// list for the resolved customer identity; becoming unauthenticated
// clears state synchronously with no backend call.
func (w *Wishlist) OnAuthChange(ctx context.Context, authenticated bool, customerID string) error {
	if !authenticated {
		w.mu.Lock()
		w.authed = false
		w.customerID = ""
		w.items = nil
		w.count = 0
		w.errMsg = ""
		w.loading = false
		w.gen++ // invalidate any reload still in flight
		w.mu.Unlock()
		w.notify()
		return nil
	}

	w.mu.Lock()
	w.authed = true
	w.customerID = customerID
	w.mu.Unlock()
	return w.reload(ctx)
}

// Add puts a product on the wishlist and reloads. The error is both
// stored for display and returned, so callers using Add as a subroutine
// can react too.
func (w *Wishlist) Add(ctx context.Context, productID string) error {
	return w.mutate(ctx, func(customerID string) error {
		return w.svc.Add(ctx, customerID, productID)
	})
}

func (w *Wishlist) Remove(ctx context.Context, productID string) error {
	return w.mutate(ctx, func(customerID string) error {
		return w.svc.Remove(ctx, customerID, productID)
	})
}

// Toggle adds or removes based on current membership. Two awaited
// toggles in a row land back on the original state.
func (w *Wishlist) Toggle(ctx context.Context, productID string) error {
	if w.Contains(productID) {
		return w.Remove(ctx, productID)
	}
	return w.Add(ctx, productID)
}

func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, it := range w.items {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

func (w *Wishlist) Snapshot() WishlistSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Subscribe registers a consumer. Sends never block the store; a slow
// subscriber misses intermediate snapshots, not final state.
func (w *Wishlist) Subscribe() (<-chan WishlistSnapshot, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextSub
	w.nextSub++
	ch := make(chan WishlistSnapshot, 8)
	w.subs[id] = ch

	unsubscribe := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if ch, ok := w.subs[id]; ok {
			close(ch)
			delete(w.subs, id)
		}
	}
	return ch, unsubscribe
}

func (w *Wishlist) mutate(ctx context.Context, op func(customerID string) error) error {
	w.mu.Lock()
	if !w.authed {
		w.mu.Unlock()
		return nil
	}
	customerID := w.customerID
	w.loading = true
	w.errMsg = ""
	w.mu.Unlock()
	w.notify()

	if err := op(customerID); err != nil {
		w.mu.Lock()
		w.loading = false
		w.errMsg = err.Error()
		w.mu.Unlock()
		w.notify()
		return err
	}

	return w.reload(ctx)
}

func (w *Wishlist) reload(ctx context.Context) error {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	customerID := w.customerID
	w.loading = true
	w.mu.Unlock()
	w.notify()

	wl, err := w.svc.Get(ctx, customerID)

	w.mu.Lock()
	if gen != w.gen {
		// A newer reload or a sign-out superseded this fetch.
		w.mu.Unlock()
		return err
	}
	w.loading = false
	if err != nil {
		w.errMsg = err.Error()
		w.mu.Unlock()
		w.notify()
		return err
	}
	w.items = wl.Items
	w.count = wl.Count
	if w.count == 0 {
		w.count = len(wl.Items)
	}
	w.errMsg = ""
	w.mu.Unlock()
	w.notify()
	return nil
}

func (w *Wishlist) snapshotLocked() WishlistSnapshot {
	items := make([]api.WishlistItem, len(w.items))
	copy(items, w.items)
	return WishlistSnapshot{
		Items:         items,
		Count:         w.count,
		Loading:       w.loading,
		Err:           w.errMsg,
		Authenticated: w.authed,
	}
}

func (w *Wishlist) notify() {
	w.mu.Lock()
	snap := w.snapshotLocked()
	chans := make([]chan WishlistSnapshot, 0, len(w.subs))
	for _, ch := range w.subs {
		chans = append(chans, ch)
	}
	w.mu.Unlock()

	for _, ch := range chans {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Registry hands out one wishlist store per customer identity.
type Registry struct {
	svc *api.WishlistService
	log *slog.Logger

	mu     sync.Mutex
	stores map[string]*Wishlist
}

func NewRegistry(svc *api.WishlistService, log *slog.Logger) *Registry {
	return &Registry{svc: svc, log: log, stores: make(map[string]*Wishlist)}
}

// For returns the store for a customer, creating and priming it on
// first use. A failed prime is kept in the store's error slot for the
// page to render; the log line is for operators.
func (r *Registry) For(ctx context.Context, customerID string) *Wishlist {
	r.mu.Lock()
	w, ok := r.stores[customerID]
	if !ok {
		w = NewWishlist(r.svc)
		r.stores[customerID] = w
	}
	r.mu.Unlock()

	if !ok {
		if err := w.OnAuthChange(ctx, true, customerID); err != nil {
			r.log.LogAttrs(ctx, slog.LevelDebug, "wishlist_prime_failed",
				slog.String("customer_id", customerID),
				slog.Any("err", err),
			)
		}
	}
	return w
}

// Drop clears and forgets a customer's store (sign-out).
func (r *Registry) Drop(customerID string) {
	r.mu.Lock()
	w, ok := r.stores[customerID]
	delete(r.stores, customerID)
	r.mu.Unlock()

	if ok {
		_ = w.OnAuthChange(context.Background(), false, "")
	}
}
