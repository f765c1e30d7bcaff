package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type OrdersHandler struct {
	orders      *api.OrderService
	carts       *api.CartService
	flash       *flash.Codec
	badgeCookie string
	secure      bool
	log         *slog.Logger
}

func NewOrdersHandler(orders *api.OrderService, carts *api.CartService, fc *flash.Codec, badgeCookie string, secure bool, log *slog.Logger) *OrdersHandler {
	return &OrdersHandler{orders: orders, carts: carts, flash: fc, badgeCookie: badgeCookie, secure: secure, log: log}
}

// History renders the signed-in customer's order list.
func (h *OrdersHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	u, _ := middleware.CurrentUser(c)

	page, err := h.orders.MyOrders(ctx, u.CustomerIdentity(), PageRequestFromQuery(c))
	vm := view.OrdersPage{Title: "My Orders"}
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelWarn, "orders_fetch_failed", slog.Any("err", err))
		vm.Error = "We could not load your orders. Please try again."
		render.HTML(c, http.StatusOK, "orders.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}

	for _, o := range page.Items {
		vm.Orders = append(vm.Orders, view.OrderListItem{
			ID:     o.ID,
			Number: o.Number,
			Placed: format.Date(o.CreatedAt),
			Ago:    format.Ago(o.CreatedAt),
			Status: string(o.Status),
			Total:  format.MoneyFromCents(o.TotalCents, o.Currency),
			Items:  o.ItemCount,
		})
	}
	vm.Pagination = PaginationView(page)
	render.HTML(c, http.StatusOK, "orders.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

type orderDetailVM struct {
	ID     string
	Number string
	Placed string
	Status string
	Total  string
	Items  []view.CartItem
}

// Detail renders one order. Customers only ever see their own orders;
// anything else reads as not found rather than forbidden.
func (h *OrdersHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	u, _ := middleware.CurrentUser(c)

	o, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !u.IsAdmin() && o.CustomerID != u.CustomerIdentity() {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	vm := orderDetailVM{
		ID:     o.ID,
		Number: o.Number,
		Placed: format.Date(o.CreatedAt),
		Status: string(o.Status),
		Total:  format.MoneyFromCents(o.TotalCents, o.Currency),
	}
	for _, it := range o.Items {
		vm.Items = append(vm.Items, view.CartItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: format.MoneyFromCents(it.PriceCents, o.Currency),
			LineTotal: format.MoneyFromCents(it.PriceCents*int64(it.Quantity), o.Currency),
		})
	}
	render.HTML(c, http.StatusOK, "order_detail.tmpl", gin.H{"Page": vm, "Title": "Order " + o.Number})
}

// Receipt streams the backend-generated receipt through unchanged:
// same bytes, content type and filename.
func (h *OrdersHandler) Receipt(c *gin.Context) {
	ctx := c.Request.Context()
	u, _ := middleware.CurrentUser(c)

	o, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if !u.IsAdmin() && o.CustomerID != u.CustomerIdentity() {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}

	blob, err := h.orders.DownloadReceipt(ctx, o.ID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	name := blob.Filename
	if name == "" {
		name = "receipt-" + o.Number + ".pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

type checkoutVM struct {
	Title    string
	Count    int
	Subtotal string
	Address  string
	Note     string
	Errors   validation.FieldErrors
}

// CheckoutForm shows the order summary and address form. An empty cart
// bounces back to the cart page.
func (h *OrdersHandler) CheckoutForm(c *gin.Context) {
	ctx := c.Request.Context()
	u, _ := middleware.CurrentUser(c)

	cart, err := h.carts.Get(ctx, api.CartKey{CustomerID: u.CustomerIdentity()})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if len(cart.Items) == 0 {
		render.RedirectWithFlash(c, h.flash, "/cart", view.FlashInfo, "Your cart is empty.")
		return
	}

	vm := checkoutVM{
		Title:    "Checkout",
		Count:    cart.Count(),
		Subtotal: format.MoneyFromCents(cart.SubtotalCents, cart.Currency),
	}
	render.HTML(c, http.StatusOK, "checkout.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

// PlaceOrder submits the order and resets the cart badge.
func (h *OrdersHandler) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()
	u, _ := middleware.CurrentUser(c)

	address := c.PostForm("address")
	note := c.PostForm("note")
	if address == "" {
		cart, err := h.carts.Get(ctx, api.CartKey{CustomerID: u.CustomerIdentity()})
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		vm := checkoutVM{
			Title:    "Checkout",
			Count:    cart.Count(),
			Subtotal: format.MoneyFromCents(cart.SubtotalCents, cart.Currency),
			Note:     note,
			Errors:   validation.FieldErrors{"address": "A delivery address is required."},
		}
		render.HTML(c, http.StatusUnprocessableEntity, "checkout.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}

	o, err := h.orders.Place(ctx, api.PlaceOrderRequest{
		CustomerID: u.CustomerIdentity(),
		Address:    address,
		Note:       note,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	middleware.SetCartCountCookie(c, h.badgeCookie, 0, h.secure)
	render.RedirectWithFlash(c, h.flash, "/orders/"+o.ID, view.FlashSuccess, "Order "+o.Number+" placed. Thank you!")
}
