package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

// PageRequestFromQuery reads ?page=&size=&sort=&dir= with the usual
// defaults. Bad numbers fall back instead of failing the request.
func PageRequestFromQuery(c *gin.Context) api.PageRequest {
	req := api.PageRequest{
		SortBy:  c.Query("sort"),
		SortDir: api.SortDir(c.Query("dir")),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		req.Page = v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		req.Size = v
	}
	return req.Normalize()
}

// PaginationView flattens a fetched page into the display form the
// templates render.
func PaginationView[T any](p api.Page[T]) view.Pagination {
	return view.Pagination{
		Page:       p.CurrentPage,
		Display:    p.DisplayPage(),
		TotalPages: p.TotalPages,
		PageSize:   p.PageSize,
		HasPrev:    p.HasPrev(),
		HasNext:    p.HasNext(),
		PrevPage:   p.CurrentPage - 1,
		NextPage:   p.CurrentPage + 1,
		Label:      p.ShowingLabel(),
	}
}
