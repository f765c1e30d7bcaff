package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/guestid"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type CartHandler struct {
	carts       *api.CartService
	guest       *guestid.Codec
	flash       *flash.Codec
	badgeCookie string
	secure      bool
	log         *slog.Logger
}

func NewCartHandler(carts *api.CartService, guest *guestid.Codec, fc *flash.Codec, badgeCookie string, secure bool, log *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, guest: guest, flash: fc, badgeCookie: badgeCookie, secure: secure, log: log}
}

// key resolves the cart owner: the signed-in customer, else the guest
// cookie (created on first use).
func (h *CartHandler) key(c *gin.Context) api.CartKey {
	if u, ok := middleware.CurrentUser(c); ok {
		return api.CartKey{CustomerID: u.CustomerIdentity()}
	}
	return api.CartKey{GuestID: h.guest.GetOrCreate(c)}
}

// Show renders the cart page. When a signed-in customer still carries a
// guest cookie the guest cart is merged in first, then the cookie
// dropped.
func (h *CartHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	if u, ok := middleware.CurrentUser(c); ok {
		if gid, has := h.guest.Get(c); has {
			if _, err := h.carts.Merge(ctx, gid, u.CustomerIdentity()); err != nil {
				h.log.LogAttrs(ctx, slog.LevelWarn, "cart_merge_failed", slog.Any("err", err))
			} else {
				h.guest.Clear(c)
			}
		}
	}

	cart, err := h.carts.Get(ctx, h.key(c))
	vm := view.CartPage{Title: "Your Cart"}
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelWarn, "cart_fetch_failed", slog.Any("err", err))
		vm.Error = "We could not load your cart. Please try again."
		render.HTML(c, http.StatusOK, "cart.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}

	h.fillCartPage(&vm, cart)
	middleware.SetCartCountCookie(c, h.badgeCookie, cart.Count(), h.secure)
	render.HTML(c, http.StatusOK, "cart.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

func (h *CartHandler) fillCartPage(vm *view.CartPage, cart api.Cart) {
	for _, it := range cart.Items {
		vm.Items = append(vm.Items, view.CartItem{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Slug:      it.Product.Slug,
			ImageURL:  it.Product.ImageURL,
			Quantity:  it.Quantity,
			UnitPrice: format.MoneyFromCents(it.PriceCents, cart.Currency),
			LineTotal: format.MoneyFromCents(it.PriceCents*int64(it.Quantity), cart.Currency),
		})
	}
	vm.Subtotal = format.MoneyFromCents(cart.SubtotalCents, cart.Currency)
	vm.Count = cart.Count()
}

// AddItem handles the add-to-cart forms scattered across the
// storefront.
func (h *CartHandler) AddItem(c *gin.Context) {
	productID := c.PostForm("productId")
	qty, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
	if err != nil || qty < 1 {
		qty = 1
	}
	if productID == "" {
		render.RedirectWithFlash(c, h.flash, backTo(c, "/products"), view.FlashError, "That product could not be added.")
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), h.key(c), productID, qty)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	middleware.SetCartCountCookie(c, h.badgeCookie, cart.Count(), h.secure)
	render.RedirectWithFlash(c, h.flash, backTo(c, "/cart"), view.FlashSuccess, "Added to your cart.")
}

// UpdateQuantity sets an item's quantity. Zero removes the item; the
// client never sends a negative number to the backend.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("productID")
	qty, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || qty < 0 {
		render.RedirectWithFlash(c, h.flash, "/cart", view.FlashError, "Quantity must be zero or more.")
		return
	}

	cart, err := h.carts.UpdateQuantity(c.Request.Context(), h.key(c), productID, qty)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	middleware.SetCartCountCookie(c, h.badgeCookie, cart.Count(), h.secure)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), h.key(c), c.Param("productID"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	middleware.SetCartCountCookie(c, h.badgeCookie, cart.Count(), h.secure)
	render.RedirectWithFlash(c, h.flash, "/cart", view.FlashInfo, "Item removed.")
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), h.key(c)); err != nil {
		middleware.Fail(c, err)
		return
	}
	middleware.SetCartCountCookie(c, h.badgeCookie, 0, h.secure)
	render.RedirectWithFlash(c, h.flash, "/cart", view.FlashInfo, "Cart cleared.")
}

// backTo returns the referer when it is a local path, else the
// fallback. Keeps post-action redirects on the page the user acted on.
func backTo(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if len(ref) > 0 && ref[0] == '/' {
		return ref
	}
	return fallback
}
