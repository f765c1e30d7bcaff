package api

import (
	"context"
	"net/http"
	"net/url"
)

type WishlistItem struct {
	ID      string  `json:"id"`
	Product Product `json:"product"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

func (w Wishlist) Contains(productID string) bool {
	for _, it := range w.Items {
		if it.Product.ID == productID {
			return true
		}
	}
	return false
}

type WishlistService struct {
	c *Client
}

func NewWishlistService(c *Client) *WishlistService { return &WishlistService{c: c} }

func (s *WishlistService) Get(ctx context.Context, customerID string) (Wishlist, error) {
	q := url.Values{}
	q.Set("customerId", customerID)
	return Call[Wishlist](ctx, s.c, http.MethodGet, "/wishlist", q, nil)
}

func (s *WishlistService) Add(ctx context.Context, customerID, productID string) error {
	body := map[string]string{"customerId": customerID, "productId": productID}
	_, err := Call[struct{}](ctx, s.c, http.MethodPost, "/wishlist/items", nil, body)
	return err
}

func (s *WishlistService) Remove(ctx context.Context, customerID, productID string) error {
	q := url.Values{}
	q.Set("customerId", customerID)
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/wishlist/items/"+productID, q, nil)
	return err
}
