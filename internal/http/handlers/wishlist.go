package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/store"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

// WishlistHandler serves the per-customer wishlist. All routes sit
// behind RequireAuth; guests are redirected to sign in first.
type WishlistHandler struct {
	registry *store.Registry
	flash    *flash.Codec
}

func NewWishlistHandler(registry *store.Registry, fc *flash.Codec) *WishlistHandler {
	return &WishlistHandler{registry: registry, flash: fc}
}

func (h *WishlistHandler) store(c *gin.Context) *store.Wishlist {
	u, _ := middleware.CurrentUser(c)
	return h.registry.For(c.Request.Context(), u.CustomerIdentity())
}

func (h *WishlistHandler) Show(c *gin.Context) {
	snap := h.store(c).Snapshot()

	vm := view.WishlistPage{Title: "Wishlist", Count: snap.Count}
	if snap.Err != "" {
		vm.Error = "We could not load your wishlist. Please try again."
	}
	for _, it := range snap.Items {
		vm.Items = append(vm.Items, view.WishlistItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Slug:      it.Product.Slug,
			ImageURL:  it.Product.ImageURL,
			Price:     format.MoneyFromCents(it.Product.PriceCents, it.Product.Currency),
			InStock:   it.Product.Stock > 0,
		})
	}
	render.HTML(c, http.StatusOK, "wishlist.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

// Toggle flips a product in or out of the wishlist, from the heart
// buttons on product cards.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	productID := c.PostForm("productId")
	if productID == "" {
		render.RedirectWithFlash(c, h.flash, backTo(c, "/products"), view.FlashError, "That product could not be saved.")
		return
	}
	if err := h.store(c).Toggle(c.Request.Context(), productID); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.flash, backTo(c, "/products"), view.FlashSuccess, "Wishlist updated.")
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.store(c).Remove(c.Request.Context(), c.Param("productID")); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.flash, "/wishlist", view.FlashInfo, "Removed from your wishlist.")
}
