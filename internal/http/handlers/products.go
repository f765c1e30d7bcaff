package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/store"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type ProductsHandler struct {
	products  *api.ProductService
	wishlists *store.Registry
	log       *slog.Logger
}

func NewProductsHandler(products *api.ProductService, wishlists *store.Registry, log *slog.Logger) *ProductsHandler {
	return &ProductsHandler{products: products, wishlists: wishlists, log: log}
}

// List renders the browsing page. ?q= searches, ?category= narrows to a
// category, and both carry normal pagination.
func (h *ProductsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	req := PageRequestFromQuery(c)
	keyword := c.Query("q")
	categoryID := c.Query("category")

	var (
		page api.Page[api.Product]
		err  error
	)
	switch {
	case keyword != "":
		page, err = h.products.Search(ctx, keyword, req)
	case categoryID != "":
		page, err = h.products.ByCategory(ctx, categoryID, req)
	default:
		page, err = h.products.List(ctx, req)
	}

	vm := view.ProductsPage{Title: "Products", Keyword: keyword, Category: categoryID}
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelWarn, "products_list_failed", slog.Any("err", err))
		vm.Error = "We could not load products. Please try again."
		render.HTML(c, http.StatusOK, "products.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}

	var wished func(string) bool
	if u, ok := middleware.CurrentUser(c); ok {
		wl := h.wishlists.For(ctx, u.CustomerIdentity())
		wished = wl.Contains
	}

	for _, p := range page.Items {
		card := view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Slug:     p.Slug,
			ImageURL: p.ImageURL,
			Price:    format.MoneyFromCents(p.PriceCents, p.Currency),
			Category: p.CategoryName,
			Brand:    p.BrandName,
			InStock:  p.Stock > 0,
		}
		if wished != nil {
			card.Wishlisted = wished(p.ID)
		}
		vm.Products = append(vm.Products, card)
	}
	vm.Pagination = PaginationView(page)

	render.HTML(c, http.StatusOK, "products.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

// Detail renders one product by slug.
func (h *ProductsHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.products.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	vm := view.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       format.MoneyFromCents(p.PriceCents, p.Currency),
		ImageURL:    p.ImageURL,
		Category:    p.CategoryName,
		Brand:       p.BrandName,
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
	}
	render.HTML(c, http.StatusOK, "product_detail.tmpl", gin.H{"Page": vm, "Title": p.Name})
}
