package api

import (
	"context"
	"net/http"
)

// Categories and brands share the same list/detail surface; the
// services differ only in paths and payload shape.

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    string `json:"parentId"`
	Active      bool   `json:"active"`
}

type CategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	ParentID    string `json:"parentId" form:"parent_id"`
	Active      bool   `json:"active" form:"active"`
}

type CategoryService struct {
	c *Client
}

func NewCategoryService(c *Client) *CategoryService { return &CategoryService{c: c} }

func (s *CategoryService) List(ctx context.Context, req PageRequest) (Page[Category], error) {
	return Call[Page[Category]](ctx, s.c, http.MethodGet, "/categories", req.Query(), nil)
}

// All returns the flat unpaginated list used to fill parent/category
// selects on forms.
func (s *CategoryService) All(ctx context.Context) ([]Category, error) {
	return Call[[]Category](ctx, s.c, http.MethodGet, "/categories/all", nil, nil)
}

func (s *CategoryService) Get(ctx context.Context, id string) (Category, error) {
	return Call[Category](ctx, s.c, http.MethodGet, "/categories/"+id, nil, nil)
}

func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (Category, error) {
	return Call[Category](ctx, s.c, http.MethodPost, "/categories", nil, req)
}

func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (Category, error) {
	return Call[Category](ctx, s.c, http.MethodPut, "/categories/"+id, nil, req)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/categories/"+id, nil, nil)
	return err
}

func (s *CategoryService) ToggleStatus(ctx context.Context, id string) (Category, error) {
	return Call[Category](ctx, s.c, http.MethodPatch, "/categories/"+id+"/status", nil, nil)
}

type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logoUrl"`
	Active  bool   `json:"active"`
}

type BrandRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	LogoURL string `json:"logoUrl" form:"logo_url"`
	Active  bool   `json:"active" form:"active"`
}

type BrandService struct {
	c *Client
}

func NewBrandService(c *Client) *BrandService { return &BrandService{c: c} }

func (s *BrandService) List(ctx context.Context, req PageRequest) (Page[Brand], error) {
	return Call[Page[Brand]](ctx, s.c, http.MethodGet, "/brands", req.Query(), nil)
}

// All fills the brand select on the product form.
func (s *BrandService) All(ctx context.Context) ([]Brand, error) {
	return Call[[]Brand](ctx, s.c, http.MethodGet, "/brands/all", nil, nil)
}

func (s *BrandService) Get(ctx context.Context, id string) (Brand, error) {
	return Call[Brand](ctx, s.c, http.MethodGet, "/brands/"+id, nil, nil)
}

func (s *BrandService) Create(ctx context.Context, req BrandRequest) (Brand, error) {
	return Call[Brand](ctx, s.c, http.MethodPost, "/brands", nil, req)
}

func (s *BrandService) Update(ctx context.Context, id string, req BrandRequest) (Brand, error) {
	return Call[Brand](ctx, s.c, http.MethodPut, "/brands/"+id, nil, req)
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/brands/"+id, nil, nil)
	return err
}

func (s *BrandService) ToggleStatus(ctx context.Context, id string) (Brand, error) {
	return Call[Brand](ctx, s.c, http.MethodPatch, "/brands/"+id+"/status", nil, nil)
}
