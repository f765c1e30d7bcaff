// Package listing is the one list/detail engine behind every dashboard
// screen. A screen is described once (columns, fetch, row actions) and
// the engine owns the fetch lifecycle, so brands, vendors, users and the
// rest share a single implementation instead of hand-copied triplets.
package listing

import (
	"context"
	"strings"
	"sync"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Column renders one table cell from a row value.
type Column[T any] struct {
	Header string
	Cell   func(T) string
}

// Descriptor describes one entity's screen. Delete and Toggle are
// optional; screens without them simply don't offer the action.
type Descriptor[T any] struct {
	Name       string
	Columns    []Column[T]
	RowID      func(T) string
	SearchText func(T) string

	Fetch  func(ctx context.Context, req api.PageRequest) (api.Page[T], error)
	Delete func(ctx context.Context, id string) error
	Toggle func(ctx context.Context, id string) error
}

// Screen is the three-state container: loading, ready with a page, or
// failed with a message. The page is replaced wholesale on every fetch.
//
// Overlapping fetches are resolved by generation: each Load takes a new
// generation and only the newest one may publish its result. The
// original UI let whichever response settled last win; that stale
// overwrite is deliberately closed here.
type Screen[T any] struct {
	mu     sync.Mutex
	d      Descriptor[T]
	req    api.PageRequest
	state  State
	page   api.Page[T]
	errMsg string
	filter string
	gen    uint64
}

// Snapshot is a consistent read of the screen for rendering. Visible is
// the current page's rows after the in-page filter; the filter never
// re-queries the backend and therefore only narrows within this page.
type Snapshot[T any] struct {
	State   State
	Page    api.Page[T]
	Visible []T
	Err     string
	Filter  string
	Request api.PageRequest
}

func NewScreen[T any](d Descriptor[T], req api.PageRequest) *Screen[T] {
	return &Screen[T]{d: d, req: req.Normalize(), state: StateLoading}
}

func (s *Screen[T]) Request() api.PageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.req
}

// Load fetches the current page. Safe to call concurrently; only the
// most recent call's result is published.
func (s *Screen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.errMsg = ""
	s.gen++
	gen := s.gen
	req := s.req
	s.mu.Unlock()

	page, err := s.d.Fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer request superseded this one; drop the result.
		return err
	}
	if err != nil {
		s.state = StateFailed
		s.errMsg = err.Error()
		return err
	}
	s.state = StateReady
	s.page = page
	return nil
}

// SetPage moves to a page (0-based) and refetches.
func (s *Screen[T]) SetPage(ctx context.Context, page int) error {
	s.mu.Lock()
	s.req.Page = page
	s.req = s.req.Normalize()
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetPageSize changes the page size, resets to the first page and
// refetches.
func (s *Screen[T]) SetPageSize(ctx context.Context, size int) error {
	s.mu.Lock()
	s.req.Size = size
	s.req.Page = 0
	s.req = s.req.Normalize()
	s.mu.Unlock()
	return s.Load(ctx)
}

func (s *Screen[T]) SetSort(ctx context.Context, sortBy string, dir api.SortDir) error {
	s.mu.Lock()
	s.req.SortBy = sortBy
	s.req.SortDir = dir
	s.req = s.req.Normalize()
	s.mu.Unlock()
	return s.Load(ctx)
}

// SetFilter narrows the visible rows locally. No backend call.
func (s *Screen[T]) SetFilter(q string) {
	s.mu.Lock()
	s.filter = q
	s.mu.Unlock()
}

// DeleteRow removes a row and, only on success, refetches the current
// page. A failed mutation leaves the list untouched.
func (s *Screen[T]) DeleteRow(ctx context.Context, id string) error {
	if s.d.Delete == nil {
		return nil
	}
	if err := s.d.Delete(ctx, id); err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.Load(ctx)
}

// ToggleRow flips a row's status and refetches on success.
func (s *Screen[T]) ToggleRow(ctx context.Context, id string) error {
	if s.d.Toggle == nil {
		return nil
	}
	if err := s.d.Toggle(ctx, id); err != nil {
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.Load(ctx)
}

func (s *Screen[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{
		State:   s.state,
		Page:    s.page,
		Visible: FilterPage(s.page.Items, s.filter, s.d.SearchText),
		Err:     s.errMsg,
		Filter:  s.filter,
		Request: s.req,
	}
}

// Headers and Rows render the table through the descriptor's columns.
func (s *Screen[T]) Headers() []string {
	out := make([]string, len(s.d.Columns))
	for i, col := range s.d.Columns {
		out[i] = col.Header
	}
	return out
}

func (s *Screen[T]) Rows(items []T) [][]string {
	out := make([][]string, len(items))
	for i, it := range items {
		row := make([]string, len(s.d.Columns))
		for j, col := range s.d.Columns {
			row[j] = col.Cell(it)
		}
		out[i] = row
	}
	return out
}

// FilterPage is the in-page search: a case-insensitive substring match
// over the rows already fetched. It scopes to the current page only.
func FilterPage[T any](items []T, q string, text func(T) string) []T {
	if q == "" || text == nil {
		return items
	}
	needle := strings.ToLower(q)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(text(it)), needle) {
			out = append(out, it)
		}
	}
	return out
}
