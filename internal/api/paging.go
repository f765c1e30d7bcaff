package api

import (
	"fmt"
	"net/url"
	"strconv"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PageRequest carries the pagination parameters every list endpoint
// accepts. Page is 0-based on the wire and everywhere internally; it is
// only turned 1-based at display time.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir SortDir
}

const DefaultPageSize = 10

func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	if r.SortDir != SortAsc && r.SortDir != SortDesc {
		r.SortDir = SortAsc
	}
	return r
}

func (r PageRequest) Query() url.Values {
	r = r.Normalize()
	q := url.Values{}
	q.Set("pageIndex", strconv.Itoa(r.Page))
	q.Set("pageSize", strconv.Itoa(r.Size))
	if r.SortBy != "" {
		q.Set("sortBy", r.SortBy)
		q.Set("sortDirection", string(r.SortDir))
	}
	return q
}

// Page is a single fetched page of a list. It is built fresh on every
// fetch and replaced wholesale, never patched in place.
type Page[T any] struct {
	Items       []T `json:"items"`
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// TotalPages computes ceil(totalItems/pageSize).
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems < 1 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// DisplayPage is the 1-based page number shown to users.
func (p Page[T]) DisplayPage() int { return p.CurrentPage + 1 }

// ShowingFrom is the 1-based index of the first row on this page, 0 for
// an empty result.
func (p Page[T]) ShowingFrom() int {
	if p.TotalItems == 0 {
		return 0
	}
	return p.CurrentPage*p.PageSize + 1
}

// ShowingTo is the 1-based index of the last row on this page.
func (p Page[T]) ShowingTo() int {
	to := (p.CurrentPage + 1) * p.PageSize
	if to > p.TotalItems {
		to = p.TotalItems
	}
	return to
}

// ShowingLabel renders the "Showing X to Y of Z results" line.
func (p Page[T]) ShowingLabel() string {
	if p.TotalItems == 0 {
		return "Showing 0 results"
	}
	return fmt.Sprintf("Showing %d to %d of %d results", p.ShowingFrom(), p.ShowingTo(), p.TotalItems)
}

func (p Page[T]) HasPrev() bool { return p.CurrentPage > 0 }

func (p Page[T]) HasNext() bool { return p.CurrentPage < p.TotalPages-1 }
