package api

import (
	"context"
	"net/http"
	"time"
)

type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest is the public sign-up payload. ConfirmPassword is
// checked locally and never sent to the backend.
type RegisterRequest struct {
	FirstName       string `json:"firstName" form:"first_name" binding:"required"`
	LastName        string `json:"lastName" form:"last_name" binding:"required"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Phone           string `json:"phone" form:"phone"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"-" form:"confirm_password" binding:"required"`
}

type CustomerRequest struct {
	FirstName string `json:"firstName" form:"first_name" binding:"required"`
	LastName  string `json:"lastName" form:"last_name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone"`
	Active    bool   `json:"active" form:"active"`
}

type CustomerService struct {
	c *Client
}

func NewCustomerService(c *Client) *CustomerService { return &CustomerService{c: c} }

func (s *CustomerService) List(ctx context.Context, req PageRequest) (Page[Customer], error) {
	return Call[Page[Customer]](ctx, s.c, http.MethodGet, "/customers", req.Query(), nil)
}

func (s *CustomerService) Get(ctx context.Context, id string) (Customer, error) {
	return Call[Customer](ctx, s.c, http.MethodGet, "/customers/"+id, nil, nil)
}

func (s *CustomerService) Register(ctx context.Context, req RegisterRequest) (Customer, error) {
	return Call[Customer](ctx, s.c, http.MethodPost, "/customers/register", nil, req)
}

func (s *CustomerService) Update(ctx context.Context, id string, req CustomerRequest) (Customer, error) {
	return Call[Customer](ctx, s.c, http.MethodPut, "/customers/"+id, nil, req)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/customers/"+id, nil, nil)
	return err
}

const (
	VendorPending   = "pending"
	VendorApproved  = "approved"
	VendorSuspended = "suspended"
)

type Vendor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ShopName  string    `json:"shopName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type VendorRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	ShopName string `json:"shopName" form:"shop_name" binding:"required"`
}

type VendorService struct {
	c *Client
}

func NewVendorService(c *Client) *VendorService { return &VendorService{c: c} }

func (s *VendorService) List(ctx context.Context, req PageRequest) (Page[Vendor], error) {
	return Call[Page[Vendor]](ctx, s.c, http.MethodGet, "/vendors", req.Query(), nil)
}

func (s *VendorService) Get(ctx context.Context, id string) (Vendor, error) {
	return Call[Vendor](ctx, s.c, http.MethodGet, "/vendors/"+id, nil, nil)
}

func (s *VendorService) Create(ctx context.Context, req VendorRequest) (Vendor, error) {
	return Call[Vendor](ctx, s.c, http.MethodPost, "/vendors", nil, req)
}

func (s *VendorService) Update(ctx context.Context, id string, req VendorRequest) (Vendor, error) {
	return Call[Vendor](ctx, s.c, http.MethodPut, "/vendors/"+id, nil, req)
}

func (s *VendorService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/vendors/"+id, nil, nil)
	return err
}

func (s *VendorService) Approve(ctx context.Context, id string) (Vendor, error) {
	return Call[Vendor](ctx, s.c, http.MethodPatch, "/vendors/"+id+"/approve", nil, nil)
}

func (s *VendorService) Suspend(ctx context.Context, id string) (Vendor, error) {
	return Call[Vendor](ctx, s.c, http.MethodPatch, "/vendors/"+id+"/suspend", nil, nil)
}
