package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type OrderStatus string

const (
	OrderCreated    OrderStatus = "created"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status the filter and the status dropdown
// accept, in display order.
var OrderStatuses = []OrderStatus{
	OrderCreated, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

func ValidOrderStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	CustomerID string      `json:"customerId"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"totalCents"`
	Currency   string      `json:"currency"`
	ItemCount  int         `json:"itemCount"`
	CreatedAt  time.Time   `json:"createdAt"`
	PaidAt     *time.Time  `json:"paidAt"`
}

type OrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"priceCents"`
}

type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderFilter is the explicit admin-list filter record. Only the keys
// enumerated here are recognized; ParseOrderFilter drops everything
// else instead of forwarding arbitrary query input to the backend.
type OrderFilter struct {
	Status OrderStatus
	From   *time.Time
	To     *time.Time
	Search string
}

// ParseOrderFilter reads the recognized filter keys from a query.
// Unknown keys are ignored; a status outside the enumerated set is an
// error rather than a silent pass-through.
func ParseOrderFilter(q url.Values) (OrderFilter, error) {
	var f OrderFilter

	if s := q.Get("status"); s != "" {
		st := OrderStatus(s)
		if !ValidOrderStatus(st) {
			return OrderFilter{}, fmt.Errorf("unknown order status %q", s)
		}
		f.Status = st
	}
	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return OrderFilter{}, fmt.Errorf("invalid from date %q", raw)
		}
		f.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return OrderFilter{}, fmt.Errorf("invalid to date %q", raw)
		}
		f.To = &t
	}
	f.Search = q.Get("q")

	return f, nil
}

func (f OrderFilter) Query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.From != nil {
		q.Set("from", f.From.Format("2006-01-02"))
	}
	if f.To != nil {
		q.Set("to", f.To.Format("2006-01-02"))
	}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	return q
}

type PlaceOrderRequest struct {
	CustomerID string `json:"customerId,omitempty"`
	GuestID    string `json:"guestId,omitempty"`
	Address    string `json:"address"`
	Note       string `json:"note,omitempty"`
}

type OrderService struct {
	c *Client
}

func NewOrderService(c *Client) *OrderService { return &OrderService{c: c} }

func (s *OrderService) MyOrders(ctx context.Context, customerID string, req PageRequest) (Page[Order], error) {
	q := req.Query()
	q.Set("customerId", customerID)
	return Call[Page[Order]](ctx, s.c, http.MethodGet, "/orders/my", q, nil)
}

func (s *OrderService) Get(ctx context.Context, id string) (OrderDetail, error) {
	return Call[OrderDetail](ctx, s.c, http.MethodGet, "/orders/"+id, nil, nil)
}

func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (OrderDetail, error) {
	return Call[OrderDetail](ctx, s.c, http.MethodPost, "/orders", nil, req)
}

// DownloadReceipt fetches the receipt as an opaque blob; the content is
// streamed to the browser, never parsed.
func (s *OrderService) DownloadReceipt(ctx context.Context, id string) (*Blob, error) {
	return s.c.DoRaw(ctx, "/orders/"+id+"/receipt", nil)
}

func (s *OrderService) AdminList(ctx context.Context, req PageRequest, filter OrderFilter) (Page[Order], error) {
	q := req.Query()
	for k, vs := range filter.Query() {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return Call[Page[Order]](ctx, s.c, http.MethodGet, "/admin/orders", q, nil)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status OrderStatus) (Order, error) {
	if !ValidOrderStatus(status) {
		return Order{}, fmt.Errorf("unknown order status %q", status)
	}
	body := map[string]string{"status": string(status)}
	return Call[Order](ctx, s.c, http.MethodPatch, "/orders/"+id+"/status", nil, body)
}
