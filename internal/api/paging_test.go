package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 7, 15},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TotalPages(c.total, c.size), "total=%d size=%d", c.total, c.size)
	}
}

// Pagination math property: for every valid page the showing range is
// X = page*size+1, Y = min((page+1)*size, total), and the last page
// ends exactly at total.
func TestShowingRangeProperty(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 25, 57, 200} {
		for _, size := range []int{1, 3, 10, 25} {
			pages := TotalPages(total, size)
			for page := 0; page < pages; page++ {
				p := Page[int]{TotalItems: total, CurrentPage: page, PageSize: size, TotalPages: pages}

				wantFrom := page*size + 1
				wantTo := (page + 1) * size
				if wantTo > total {
					wantTo = total
				}

				assert.Equal(t, wantFrom, p.ShowingFrom())
				assert.Equal(t, wantTo, p.ShowingTo())
				assert.LessOrEqual(t, p.ShowingFrom(), p.ShowingTo())
				if page == pages-1 {
					assert.Equal(t, total, p.ShowingTo())
				}
			}
		}
	}
}

func TestShowingLabel(t *testing.T) {
	// 25 items, page size 10, page 2 (0-based) is the canonical example.
	p := Page[string]{TotalItems: 25, CurrentPage: 2, PageSize: 10, TotalPages: 3}
	assert.Equal(t, "Showing 21 to 25 of 25 results", p.ShowingLabel())
	assert.Equal(t, 3, p.DisplayPage())
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())

	empty := Page[string]{}
	assert.Equal(t, "Showing 0 results", empty.ShowingLabel())
	assert.Equal(t, 0, empty.ShowingFrom())
}

func TestPageRequestQuery(t *testing.T) {
	q := PageRequest{Page: 2, Size: 10, SortBy: "name", SortDir: SortDesc}.Query()
	assert.Equal(t, "2", q.Get("pageIndex"))
	assert.Equal(t, "10", q.Get("pageSize"))
	assert.Equal(t, "name", q.Get("sortBy"))
	assert.Equal(t, "desc", q.Get("sortDirection"))

	// Out-of-range values normalize instead of leaking to the backend.
	q = PageRequest{Page: -3, Size: 0, SortBy: "id", SortDir: "sideways"}.Query()
	assert.Equal(t, "0", q.Get("pageIndex"))
	assert.Equal(t, fmt.Sprint(DefaultPageSize), q.Get("pageSize"))
	assert.Equal(t, "asc", q.Get("sortDirection"))
}
