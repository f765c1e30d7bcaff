package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
)

// CartKey scopes a cart to either a signed-in customer or a guest
// session id; exactly one side is set.
type CartKey struct {
	CustomerID string
	GuestID    string
}

func (k CartKey) query() url.Values {
	q := url.Values{}
	if k.CustomerID != "" {
		q.Set("customerId", k.CustomerID)
	} else if k.GuestID != "" {
		q.Set("guestId", k.GuestID)
	}
	return q
}

type CartItem struct {
	ProductID  string  `json:"productId"`
	Product    Product `json:"product"` // snapshot at add time
	Quantity   int     `json:"quantity"`
	PriceCents int64   `json:"priceCents"`
}

type Cart struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	SubtotalCents int64      `json:"subtotalCents"`
	Currency      string     `json:"currency"`
}

func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type CartService struct {
	c *Client
}

func NewCartService(c *Client) *CartService { return &CartService{c: c} }

func (s *CartService) Get(ctx context.Context, key CartKey) (Cart, error) {
	return Call[Cart](ctx, s.c, http.MethodGet, "/cart", key.query(), nil)
}

func (s *CartService) AddItem(ctx context.Context, key CartKey, productID string, qty int) (Cart, error) {
	if qty < 1 {
		return Cart{}, apperr.InvalidErr("Quantity must be at least 1.", nil)
	}
	body := map[string]any{"productId": productID, "quantity": qty}
	return Call[Cart](ctx, s.c, http.MethodPost, "/cart/items", key.query(), body)
}

// UpdateQuantity sets the quantity of a line. Zero means remove; a line
// with quantity <= 0 is never stored.
func (s *CartService) UpdateQuantity(ctx context.Context, key CartKey, productID string, qty int) (Cart, error) {
	if qty < 0 {
		return Cart{}, apperr.InvalidErr("Quantity cannot be negative.", nil)
	}
	if qty == 0 {
		return s.RemoveItem(ctx, key, productID)
	}
	body := map[string]any{"quantity": qty}
	return Call[Cart](ctx, s.c, http.MethodPut, "/cart/items/"+productID, key.query(), body)
}

func (s *CartService) RemoveItem(ctx context.Context, key CartKey, productID string) (Cart, error) {
	return Call[Cart](ctx, s.c, http.MethodDelete, "/cart/items/"+productID, key.query(), nil)
}

func (s *CartService) Clear(ctx context.Context, key CartKey) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/cart", key.query(), nil)
	return err
}

// Merge folds a guest cart into the customer's cart after sign-in.
func (s *CartService) Merge(ctx context.Context, guestID, customerID string) (Cart, error) {
	body := map[string]string{"guestId": guestID, "customerId": customerID}
	return Call[Cart](ctx, s.c, http.MethodPost, "/cart/merge", nil, body)
}
