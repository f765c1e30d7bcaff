package api

import (
	"context"
	"net/http"
	"time"
)

type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Currency     string    `json:"currency"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"imageUrl"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	BrandID      string    `json:"brandId"`
	BrandName    string    `json:"brandName"`
	VendorID     string    `json:"vendorId"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	PriceCents  int64  `json:"priceCents" form:"price_cents"`
	Currency    string `json:"currency" form:"currency"`
	Stock       int    `json:"stock" form:"stock"`
	ImageURL    string `json:"imageUrl" form:"image_url"`
	CategoryID  string `json:"categoryId" form:"category_id"`
	BrandID     string `json:"brandId" form:"brand_id"`
	Published   bool   `json:"published" form:"published"`
}

// ProductService is the remote resource client for products. Every
// method is one backend call, fire-once.
type ProductService struct {
	c *Client
}

func NewProductService(c *Client) *ProductService { return &ProductService{c: c} }

func (s *ProductService) List(ctx context.Context, req PageRequest) (Page[Product], error) {
	return Call[Page[Product]](ctx, s.c, http.MethodGet, "/products", req.Query(), nil)
}

func (s *ProductService) Get(ctx context.Context, id string) (Product, error) {
	return Call[Product](ctx, s.c, http.MethodGet, "/products/"+id, nil, nil)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (Product, error) {
	return Call[Product](ctx, s.c, http.MethodGet, "/products/slug/"+slug, nil, nil)
}

func (s *ProductService) Search(ctx context.Context, keyword string, req PageRequest) (Page[Product], error) {
	q := req.Query()
	q.Set("keyword", keyword)
	return Call[Page[Product]](ctx, s.c, http.MethodGet, "/products/search", q, nil)
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID string, req PageRequest) (Page[Product], error) {
	return Call[Page[Product]](ctx, s.c, http.MethodGet, "/categories/"+categoryID+"/products", req.Query(), nil)
}

func (s *ProductService) Create(ctx context.Context, req ProductRequest) (Product, error) {
	return Call[Product](ctx, s.c, http.MethodPost, "/products", nil, req)
}

func (s *ProductService) Update(ctx context.Context, id string, req ProductRequest) (Product, error) {
	return Call[Product](ctx, s.c, http.MethodPut, "/products/"+id, nil, req)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/products/"+id, nil, nil)
	return err
}

func (s *ProductService) ToggleStatus(ctx context.Context, id string) (Product, error) {
	return Call[Product](ctx, s.c, http.MethodPatch, "/products/"+id+"/status", nil, nil)
}
