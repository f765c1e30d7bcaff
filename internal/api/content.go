package api

import (
	"context"
	"net/http"
	"time"
)

// Hero banners and hot deals: the storefront home content managed from
// the dashboard.

type Hero struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type HeroRequest struct {
	Title    string `json:"title" form:"title" binding:"required"`
	Subtitle string `json:"subtitle" form:"subtitle"`
	ImageURL string `json:"imageUrl" form:"image_url" binding:"required"`
	LinkURL  string `json:"linkUrl" form:"link_url"`
	Position int    `json:"position" form:"position"`
	Active   bool   `json:"active" form:"active"`
}

type HeroService struct {
	c *Client
}

func NewHeroService(c *Client) *HeroService { return &HeroService{c: c} }

func (s *HeroService) List(ctx context.Context, req PageRequest) (Page[Hero], error) {
	return Call[Page[Hero]](ctx, s.c, http.MethodGet, "/heroes", req.Query(), nil)
}

// Active returns the banners the home page shows, in position order.
func (s *HeroService) Active(ctx context.Context) ([]Hero, error) {
	return Call[[]Hero](ctx, s.c, http.MethodGet, "/heroes/active", nil, nil)
}

func (s *HeroService) Get(ctx context.Context, id string) (Hero, error) {
	return Call[Hero](ctx, s.c, http.MethodGet, "/heroes/"+id, nil, nil)
}

func (s *HeroService) Create(ctx context.Context, req HeroRequest) (Hero, error) {
	return Call[Hero](ctx, s.c, http.MethodPost, "/heroes", nil, req)
}

func (s *HeroService) Update(ctx context.Context, id string, req HeroRequest) (Hero, error) {
	return Call[Hero](ctx, s.c, http.MethodPut, "/heroes/"+id, nil, req)
}

func (s *HeroService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/heroes/"+id, nil, nil)
	return err
}

func (s *HeroService) ToggleStatus(ctx context.Context, id string) (Hero, error) {
	return Call[Hero](ctx, s.c, http.MethodPatch, "/heroes/"+id+"/status", nil, nil)
}

type HotDeal struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductSlug     string    `json:"productSlug"`
	ImageURL        string    `json:"imageUrl"`
	PriceCents      int64     `json:"priceCents"`
	DealPriceCents  int64     `json:"dealPriceCents"`
	DiscountPercent int       `json:"discountPercent"`
	Currency        string    `json:"currency"`
	EndDate         time.Time `json:"endDate"`
	StockLimit      int       `json:"stockLimit"`
	SoldCount       int       `json:"soldCount"`
	Active          bool      `json:"active"`
}

// SoldOut reports whether the deal's allocation is exhausted; the
// storefront disables add-to-cart and shows "Out of Stock".
func (d HotDeal) SoldOut() bool { return d.SoldCount >= d.StockLimit }

type HotDealRequest struct {
	ProductID       string    `json:"productId" form:"product_id" binding:"required"`
	DealPriceCents  int64     `json:"dealPriceCents" form:"deal_price_cents"`
	DiscountPercent int       `json:"discountPercent" form:"discount_percent"`
	EndDate         time.Time `json:"endDate" form:"end_date" time_format:"2006-01-02T15:04"`
	StockLimit      int       `json:"stockLimit" form:"stock_limit"`
	Active          bool      `json:"active" form:"active"`
}

type HotDealService struct {
	c *Client
}

func NewHotDealService(c *Client) *HotDealService { return &HotDealService{c: c} }

func (s *HotDealService) List(ctx context.Context, req PageRequest) (Page[HotDeal], error) {
	return Call[Page[HotDeal]](ctx, s.c, http.MethodGet, "/hot-deals", req.Query(), nil)
}

func (s *HotDealService) Active(ctx context.Context) ([]HotDeal, error) {
	return Call[[]HotDeal](ctx, s.c, http.MethodGet, "/hot-deals/active", nil, nil)
}

func (s *HotDealService) Get(ctx context.Context, id string) (HotDeal, error) {
	return Call[HotDeal](ctx, s.c, http.MethodGet, "/hot-deals/"+id, nil, nil)
}

func (s *HotDealService) Create(ctx context.Context, req HotDealRequest) (HotDeal, error) {
	return Call[HotDeal](ctx, s.c, http.MethodPost, "/hot-deals", nil, req)
}

func (s *HotDealService) Update(ctx context.Context, id string, req HotDealRequest) (HotDeal, error) {
	return Call[HotDeal](ctx, s.c, http.MethodPut, "/hot-deals/"+id, nil, req)
}

func (s *HotDealService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/hot-deals/"+id, nil, nil)
	return err
}
