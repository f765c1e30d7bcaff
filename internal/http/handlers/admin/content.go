package admin

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func heroDescriptor(svc *api.HeroService) listing.Descriptor[api.Hero] {
	return listing.Descriptor[api.Hero]{
		Name: "heroes",
		Columns: []listing.Column[api.Hero]{
			{Header: "Title", Cell: func(v api.Hero) string { return v.Title }},
			{Header: "Subtitle", Cell: func(v api.Hero) string { return v.Subtitle }},
			{Header: "Position", Cell: func(v api.Hero) string { return strconv.Itoa(v.Position) }},
			{Header: "Active", Cell: func(v api.Hero) string { return yesNo(v.Active) }},
		},
		RowID:      func(v api.Hero) string { return v.ID },
		SearchText: func(v api.Hero) string { return v.Title + " " + v.Subtitle },
		Fetch:      svc.List,
		Delete:     svc.Delete,
		Toggle: func(ctx context.Context, id string) error {
			_, err := svc.ToggleStatus(ctx, id)
			return err
		},
	}
}

func registerHeroes(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Hero Banners", BasePath: "/admin/heroes", CanCreate: true}
	registerListRoutes(g, d.Flash, "/heroes", heroDescriptor(d.Heroes), opts)

	fields := func(req api.HeroRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "Title", Name: "title", Kind: "text", Value: req.Title, Error: errs["title"]},
			{Label: "Subtitle", Name: "subtitle", Kind: "text", Value: req.Subtitle, Error: errs["subtitle"]},
			{Label: "Image URL", Name: "image_url", Kind: "text", Value: req.ImageURL, Error: errs["image_url"]},
			{Label: "Link URL", Name: "link_url", Kind: "text", Value: req.LinkURL, Error: errs["link_url"]},
			{Label: "Position", Name: "position", Kind: "number", Value: strconv.Itoa(req.Position), Error: errs["position"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}
	}

	g.GET("/heroes/new", func(c *gin.Context) {
		renderForm(c, http.StatusOK, formVM{Title: "New Hero", Action: "/admin/heroes", BackPath: "/admin/heroes", Fields: fields(api.HeroRequest{Active: true}, nil)})
	})
	g.POST("/heroes", func(c *gin.Context) {
		var req api.HeroRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Hero", Action: "/admin/heroes", BackPath: "/admin/heroes", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Heroes.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/heroes", view.FlashSuccess, "Hero created.")
	})
	g.GET("/heroes/:id/edit", func(c *gin.Context) {
		v, err := d.Heroes.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.HeroRequest{Title: v.Title, Subtitle: v.Subtitle, ImageURL: v.ImageURL, LinkURL: v.LinkURL, Position: v.Position, Active: v.Active}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Hero", Action: "/admin/heroes/" + v.ID, BackPath: "/admin/heroes", Fields: fields(req, nil)})
	})
	g.POST("/heroes/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.HeroRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Hero", Action: "/admin/heroes/" + id, BackPath: "/admin/heroes", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Heroes.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/heroes", view.FlashSuccess, "Hero updated.")
	})
}

func hotDealDescriptor(svc *api.HotDealService) listing.Descriptor[api.HotDeal] {
	return listing.Descriptor[api.HotDeal]{
		Name: "hot-deals",
		Columns: []listing.Column[api.HotDeal]{
			{Header: "Product", Cell: func(v api.HotDeal) string { return v.ProductName }},
			{Header: "Deal price", Cell: func(v api.HotDeal) string { return format.MoneyFromCents(v.DealPriceCents, v.Currency) }},
			{Header: "Discount", Cell: func(v api.HotDeal) string { return strconv.Itoa(v.DiscountPercent) + "%" }},
			{Header: "Ends", Cell: func(v api.HotDeal) string { return format.DateTime(v.EndDate) }},
			{Header: "Sold", Cell: func(v api.HotDeal) string { return strconv.Itoa(v.SoldCount) + "/" + strconv.Itoa(v.StockLimit) }},
			{Header: "Active", Cell: func(v api.HotDeal) string { return yesNo(v.Active) }},
		},
		RowID:      func(v api.HotDeal) string { return v.ID },
		SearchText: func(v api.HotDeal) string { return v.ProductName },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerHotDeals(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Hot Deals", BasePath: "/admin/hot-deals", CanCreate: true}
	registerListRoutes(g, d.Flash, "/hot-deals", hotDealDescriptor(d.HotDeals), opts)

	fields := func(ctx context.Context, req api.HotDealRequest, errs validation.FieldErrors) ([]formField, error) {
		// The product select reads the first hundred products; deals are
		// set up for current stock, not the whole catalog.
		page, err := d.Products.List(ctx, api.PageRequest{Size: 100})
		if err != nil {
			return nil, err
		}
		prodOpts := make([]formOption, 0, len(page.Items))
		for _, p := range page.Items {
			prodOpts = append(prodOpts, formOption{Value: p.ID, Label: p.Name})
		}
		endValue := ""
		if !req.EndDate.IsZero() {
			endValue = req.EndDate.Format("2006-01-02T15:04")
		}
		return []formField{
			{Label: "Product", Name: "product_id", Kind: "select", Value: req.ProductID, Options: prodOpts, Error: errs["product_id"]},
			{Label: "Deal price (cents)", Name: "deal_price_cents", Kind: "number", Value: strconv.FormatInt(req.DealPriceCents, 10), Error: errs["deal_price_cents"]},
			{Label: "Discount %", Name: "discount_percent", Kind: "number", Value: strconv.Itoa(req.DiscountPercent), Error: errs["discount_percent"]},
			{Label: "Ends at", Name: "end_date", Kind: "datetime-local", Value: endValue, Error: errs["end_date"]},
			{Label: "Stock limit", Name: "stock_limit", Kind: "number", Value: strconv.Itoa(req.StockLimit), Error: errs["stock_limit"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}, nil
	}

	validateDeal := func(req api.HotDealRequest, errs validation.FieldErrors) validation.FieldErrors {
		if errs == nil {
			errs = validation.FieldErrors{}
		}
		if _, ok := errs["end_date"]; !ok && !req.EndDate.IsZero() && req.EndDate.Before(time.Now()) {
			errs["end_date"] = "The end date must be in the future."
		}
		return errs
	}

	g.GET("/hot-deals/new", func(c *gin.Context) {
		fs, err := fields(c.Request.Context(), api.HotDealRequest{Active: true}, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "New Hot Deal", Action: "/admin/hot-deals", BackPath: "/admin/hot-deals", Fields: fs})
	})
	g.POST("/hot-deals", func(c *gin.Context) {
		var req api.HotDealRequest
		errs := validation.FieldErrors{}
		if err := c.ShouldBind(&req); err != nil {
			errs = validation.FromBindError(err, &req)
		}
		errs = validateDeal(req, errs)
		if errs.Any() {
			fs, ferr := fields(c.Request.Context(), req, errs)
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Hot Deal", Action: "/admin/hot-deals", BackPath: "/admin/hot-deals", Fields: fs})
			return
		}
		if _, err := d.HotDeals.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/hot-deals", view.FlashSuccess, "Hot deal created.")
	})
	g.GET("/hot-deals/:id/edit", func(c *gin.Context) {
		v, err := d.HotDeals.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.HotDealRequest{ProductID: v.ProductID, DealPriceCents: v.DealPriceCents, DiscountPercent: v.DiscountPercent, EndDate: v.EndDate, StockLimit: v.StockLimit, Active: v.Active}
		fs, err := fields(c.Request.Context(), req, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Hot Deal", Action: "/admin/hot-deals/" + v.ID, BackPath: "/admin/hot-deals", Fields: fs})
	})
	g.POST("/hot-deals/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.HotDealRequest
		errs := validation.FieldErrors{}
		if err := c.ShouldBind(&req); err != nil {
			errs = validation.FromBindError(err, &req)
		}
		errs = validateDeal(req, errs)
		if errs.Any() {
			fs, ferr := fields(c.Request.Context(), req, errs)
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Hot Deal", Action: "/admin/hot-deals/" + id, BackPath: "/admin/hot-deals", Fields: fs})
			return
		}
		if _, err := d.HotDeals.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/hot-deals", view.FlashSuccess, "Hot deal updated.")
	})
}
