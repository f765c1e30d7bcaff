package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func productDescriptor(svc *api.ProductService) listing.Descriptor[api.Product] {
	return listing.Descriptor[api.Product]{
		Name: "products",
		Columns: []listing.Column[api.Product]{
			{Header: "Name", Cell: func(p api.Product) string { return p.Name }},
			{Header: "Category", Cell: func(p api.Product) string { return p.CategoryName }},
			{Header: "Brand", Cell: func(p api.Product) string { return p.BrandName }},
			{Header: "Price", Cell: func(p api.Product) string { return format.MoneyFromCents(p.PriceCents, p.Currency) }},
			{Header: "Stock", Cell: func(p api.Product) string { return strconv.Itoa(p.Stock) }},
			{Header: "Published", Cell: func(p api.Product) string { return yesNo(p.Published) }},
		},
		RowID:      func(p api.Product) string { return p.ID },
		SearchText: func(p api.Product) string { return p.Name + " " + p.CategoryName + " " + p.BrandName },
		Fetch:      svc.List,
		Delete:     svc.Delete,
		Toggle: func(ctx context.Context, id string) error {
			_, err := svc.ToggleStatus(ctx, id)
			return err
		},
	}
}

func registerProducts(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Products", BasePath: "/admin/products", CanCreate: true, Export: true}
	registerListRoutes(g, d.Flash, "/products", productDescriptor(d.Products), opts)

	h := &productForms{d: d}
	g.GET("/products/new", h.newForm)
	g.POST("/products", h.create)
	g.GET("/products/:id/edit", h.editForm)
	g.POST("/products/:id", h.update)
}

type productForms struct {
	d Deps
}

func (h *productForms) fields(ctx context.Context, req api.ProductRequest, errs validation.FieldErrors) ([]formField, error) {
	cats, err := h.d.Categories.All(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := h.d.Brands.All(ctx)
	if err != nil {
		return nil, err
	}

	catOpts := make([]formOption, 0, len(cats))
	for _, c := range cats {
		catOpts = append(catOpts, formOption{Value: c.ID, Label: c.Name})
	}
	brandOpts := make([]formOption, 0, len(brands))
	for _, b := range brands {
		brandOpts = append(brandOpts, formOption{Value: b.ID, Label: b.Name})
	}

	return []formField{
		{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
		{Label: "Description", Name: "description", Kind: "textarea", Value: req.Description, Error: errs["description"]},
		{Label: "Price (cents)", Name: "price_cents", Kind: "number", Value: strconv.FormatInt(req.PriceCents, 10), Error: errs["price_cents"]},
		{Label: "Currency", Name: "currency", Kind: "text", Value: req.Currency, Error: errs["currency"]},
		{Label: "Stock", Name: "stock", Kind: "number", Value: strconv.Itoa(req.Stock), Error: errs["stock"]},
		{Label: "Image URL", Name: "image_url", Kind: "text", Value: req.ImageURL, Error: errs["image_url"]},
		{Label: "Category", Name: "category_id", Kind: "select", Value: req.CategoryID, Options: catOpts, Error: errs["category_id"]},
		{Label: "Brand", Name: "brand_id", Kind: "select", Value: req.BrandID, Options: brandOpts, Error: errs["brand_id"]},
		{Label: "Published", Name: "published", Kind: "checkbox", Value: boolValue(req.Published), Error: errs["published"]},
	}, nil
}

func (h *productForms) newForm(c *gin.Context) {
	fields, err := h.fields(c.Request.Context(), api.ProductRequest{Currency: "USD"}, nil)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	renderForm(c, http.StatusOK, formVM{
		Title:    "New Product",
		Action:   "/admin/products",
		BackPath: "/admin/products",
		Fields:   fields,
	})
}

func (h *productForms) create(c *gin.Context) {
	var req api.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reshow(c, "/admin/products", "New Product", req, validation.FromBindError(err, &req))
		return
	}
	if _, err := h.d.Products.Create(c.Request.Context(), req); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.d.Flash, "/admin/products", view.FlashSuccess, "Product created.")
}

func (h *productForms) editForm(c *gin.Context) {
	p, err := h.d.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	req := api.ProductRequest{
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Published:   p.Published,
	}
	fields, err := h.fields(c.Request.Context(), req, nil)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	renderForm(c, http.StatusOK, formVM{
		Title:    "Edit Product",
		Action:   "/admin/products/" + p.ID,
		BackPath: "/admin/products",
		Fields:   fields,
	})
}

func (h *productForms) update(c *gin.Context) {
	id := c.Param("id")
	var req api.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reshow(c, "/admin/products/"+id, "Edit Product", req, validation.FromBindError(err, &req))
		return
	}
	if _, err := h.d.Products.Update(c.Request.Context(), id, req); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.d.Flash, "/admin/products", view.FlashSuccess, "Product updated.")
}

func (h *productForms) reshow(c *gin.Context, action, title string, req api.ProductRequest, errs validation.FieldErrors) {
	fields, err := h.fields(c.Request.Context(), req, errs)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	renderForm(c, http.StatusUnprocessableEntity, formVM{
		Title:    title,
		Action:   action,
		BackPath: "/admin/products",
		Fields:   fields,
	})
}
