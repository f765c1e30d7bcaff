// mockbackend is a tiny stand-in for the platform API so the web
// front-end can be developed without a running backend. It serves a
// fixed catalog in the standard response envelope and keeps carts and
// wishlists in memory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/slug"
)

type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

func writeOK(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, true, "OK", data)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, false, msg, nil)
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Success:    success,
		Message:    msg,
		Data:       data,
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

type product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Currency     string    `json:"currency"`
	Stock        int       `json:"stock"`
	ImageURL     string    `json:"imageUrl"`
	CategoryName string    `json:"categoryName"`
	BrandName    string    `json:"brandName"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
}

type page struct {
	Items       any `json:"items"`
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

type cartItem struct {
	ProductID  string  `json:"productId"`
	Product    product `json:"product"`
	Quantity   int     `json:"quantity"`
	PriceCents int64   `json:"priceCents"`
}

type cart struct {
	ID            string     `json:"id"`
	Items         []cartItem `json:"items"`
	SubtotalCents int64      `json:"subtotalCents"`
	Currency      string     `json:"currency"`
}

type server struct {
	mu       sync.Mutex
	products []product
	carts    map[string]*cart
}

func seedProducts() []product {
	out := make([]product, 0, 24)
	for i := 1; i <= 24; i++ {
		name := fmt.Sprintf("Sample Product %d", i)
		out = append(out, product{
			ID:           fmt.Sprintf("p-%03d", i),
			Name:         name,
			Slug:         slug.FromName(name),
			Description:  "A sample product served by the mock backend.",
			PriceCents:   int64(999 + i*250),
			Currency:     "USD",
			Stock:        i % 7 * 3,
			ImageURL:     fmt.Sprintf("https://picsum.photos/seed/p%d/400/300", i),
			CategoryName: []string{"Electronics", "Home", "Outdoor"}[i%3],
			BrandName:    []string{"Acme", "Globex", "Initech"}[i%3],
			Published:    true,
			CreatedAt:    time.Now().Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return out
}

func (s *server) listProducts(w http.ResponseWriter, r *http.Request) {
	pageIdx, _ := strconv.Atoi(r.URL.Query().Get("pageIndex"))
	size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if size < 1 {
		size = 10
	}
	if pageIdx < 0 {
		pageIdx = 0
	}

	s.mu.Lock()
	items := s.products
	s.mu.Unlock()

	total := len(items)
	start := pageIdx * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	totalPages := (total + size - 1) / size

	writeOK(w, page{
		Items:       items[start:end],
		TotalItems:  total,
		CurrentPage: pageIdx,
		PageSize:    size,
		TotalPages:  totalPages,
	})
}

func (s *server) productBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Slug == slug {
			writeOK(w, p)
			return
		}
	}
	writeErr(w, http.StatusNotFound, "Product not found")
}

func (s *server) cartKey(r *http.Request) string {
	if id := r.URL.Query().Get("customerId"); id != "" {
		return "c:" + id
	}
	return "g:" + r.URL.Query().Get("guestId")
}

func (s *server) cartFor(key string) *cart {
	c, ok := s.carts[key]
	if !ok {
		c = &cart{ID: key, Currency: "USD"}
		s.carts[key] = c
	}
	return c
}

func (c *cart) recalc() {
	var sum int64
	for _, it := range c.Items {
		sum += it.PriceCents * int64(it.Quantity)
	}
	c.SubtotalCents = sum
}

func (s *server) getCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeOK(w, s.cartFor(s.cartKey(r)))
}

func (s *server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity < 1 {
		writeErr(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found *product
	for i := range s.products {
		if s.products[i].ID == body.ProductID {
			found = &s.products[i]
			break
		}
	}
	if found == nil {
		writeErr(w, http.StatusNotFound, "Product not found")
		return
	}

	c := s.cartFor(s.cartKey(r))
	for i := range c.Items {
		if c.Items[i].ProductID == body.ProductID {
			c.Items[i].Quantity += body.Quantity
			c.recalc()
			writeOK(w, c)
			return
		}
	}
	c.Items = append(c.Items, cartItem{
		ProductID:  found.ID,
		Product:    *found,
		Quantity:   body.Quantity,
		PriceCents: found.PriceCents,
	})
	c.recalc()
	writeOK(w, c)
}

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	s := &server{
		products: seedProducts(),
		carts:    map[string]*cart{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", s.listProducts)
	mux.HandleFunc("GET /products/slug/{slug}", s.productBySlug)
	mux.HandleFunc("GET /heroes/active", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []map[string]any{
			{"id": "h1", "title": "Summer Sale", "subtitle": "Up to 50% off", "imageUrl": "https://picsum.photos/seed/hero1/1200/400", "linkUrl": "/products", "position": 1, "active": true},
			{"id": "h2", "title": "New Arrivals", "subtitle": "Fresh stock weekly", "imageUrl": "https://picsum.photos/seed/hero2/1200/400", "linkUrl": "/products", "position": 2, "active": true},
		})
	})
	mux.HandleFunc("GET /hot-deals/active", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, []map[string]any{
			{
				"id": "d1", "productId": "p-001", "productName": "Sample Product 1",
				"productSlug": "sample-product-1", "imageUrl": "https://picsum.photos/seed/p1/400/300",
				"priceCents": 1249, "dealPriceCents": 899, "discountPercent": 28, "currency": "USD",
				"endDate":    time.Now().Add(26 * time.Hour).Format(time.RFC3339),
				"stockLimit": 20, "soldCount": 5, "active": true,
			},
		})
	})
	mux.HandleFunc("GET /cart", s.getCart)
	mux.HandleFunc("POST /cart/items", s.addCartItem)

	log.Printf("mock backend listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
