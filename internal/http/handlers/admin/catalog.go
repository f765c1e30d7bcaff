package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func categoryDescriptor(svc *api.CategoryService) listing.Descriptor[api.Category] {
	return listing.Descriptor[api.Category]{
		Name: "categories",
		Columns: []listing.Column[api.Category]{
			{Header: "Name", Cell: func(v api.Category) string { return v.Name }},
			{Header: "Slug", Cell: func(v api.Category) string { return v.Slug }},
			{Header: "Description", Cell: func(v api.Category) string { return v.Description }},
			{Header: "Active", Cell: func(v api.Category) string { return yesNo(v.Active) }},
		},
		RowID:      func(v api.Category) string { return v.ID },
		SearchText: func(v api.Category) string { return v.Name + " " + v.Slug },
		Fetch:      svc.List,
		Delete:     svc.Delete,
		Toggle: func(ctx context.Context, id string) error {
			_, err := svc.ToggleStatus(ctx, id)
			return err
		},
	}
}

func registerCategories(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Categories", BasePath: "/admin/categories", CanCreate: true}
	registerListRoutes(g, d.Flash, "/categories", categoryDescriptor(d.Categories), opts)

	fields := func(ctx context.Context, req api.CategoryRequest, errs validation.FieldErrors) ([]formField, error) {
		cats, err := d.Categories.All(ctx)
		if err != nil {
			return nil, err
		}
		parentOpts := make([]formOption, 0, len(cats))
		for _, c := range cats {
			parentOpts = append(parentOpts, formOption{Value: c.ID, Label: c.Name})
		}
		return []formField{
			{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
			{Label: "Description", Name: "description", Kind: "textarea", Value: req.Description, Error: errs["description"]},
			{Label: "Parent category", Name: "parent_id", Kind: "select", Value: req.ParentID, Options: parentOpts, Error: errs["parent_id"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}, nil
	}

	g.GET("/categories/new", func(c *gin.Context) {
		fs, err := fields(c.Request.Context(), api.CategoryRequest{Active: true}, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "New Category", Action: "/admin/categories", BackPath: "/admin/categories", Fields: fs})
	})
	g.POST("/categories", func(c *gin.Context) {
		var req api.CategoryRequest
		if err := c.ShouldBind(&req); err != nil {
			fs, ferr := fields(c.Request.Context(), req, validation.FromBindError(err, &req))
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Category", Action: "/admin/categories", BackPath: "/admin/categories", Fields: fs})
			return
		}
		if _, err := d.Categories.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/categories", view.FlashSuccess, "Category created.")
	})
	g.GET("/categories/:id/edit", func(c *gin.Context) {
		v, err := d.Categories.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.CategoryRequest{Name: v.Name, Description: v.Description, ParentID: v.ParentID, Active: v.Active}
		fs, err := fields(c.Request.Context(), req, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Category", Action: "/admin/categories/" + v.ID, BackPath: "/admin/categories", Fields: fs})
	})
	g.POST("/categories/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.CategoryRequest
		if err := c.ShouldBind(&req); err != nil {
			fs, ferr := fields(c.Request.Context(), req, validation.FromBindError(err, &req))
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Category", Action: "/admin/categories/" + id, BackPath: "/admin/categories", Fields: fs})
			return
		}
		if _, err := d.Categories.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/categories", view.FlashSuccess, "Category updated.")
	})
}

func brandDescriptor(svc *api.BrandService) listing.Descriptor[api.Brand] {
	return listing.Descriptor[api.Brand]{
		Name: "brands",
		Columns: []listing.Column[api.Brand]{
			{Header: "Name", Cell: func(v api.Brand) string { return v.Name }},
			{Header: "Slug", Cell: func(v api.Brand) string { return v.Slug }},
			{Header: "Active", Cell: func(v api.Brand) string { return yesNo(v.Active) }},
		},
		RowID:      func(v api.Brand) string { return v.ID },
		SearchText: func(v api.Brand) string { return v.Name + " " + v.Slug },
		Fetch:      svc.List,
		Delete:     svc.Delete,
		Toggle: func(ctx context.Context, id string) error {
			_, err := svc.ToggleStatus(ctx, id)
			return err
		},
	}
}

func registerBrands(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Brands", BasePath: "/admin/brands", CanCreate: true}
	registerListRoutes(g, d.Flash, "/brands", brandDescriptor(d.Brands), opts)

	fields := func(req api.BrandRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
			{Label: "Logo URL", Name: "logo_url", Kind: "text", Value: req.LogoURL, Error: errs["logo_url"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}
	}

	g.GET("/brands/new", func(c *gin.Context) {
		renderForm(c, http.StatusOK, formVM{Title: "New Brand", Action: "/admin/brands", BackPath: "/admin/brands", Fields: fields(api.BrandRequest{Active: true}, nil)})
	})
	g.POST("/brands", func(c *gin.Context) {
		var req api.BrandRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Brand", Action: "/admin/brands", BackPath: "/admin/brands", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Brands.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/brands", view.FlashSuccess, "Brand created.")
	})
	g.GET("/brands/:id/edit", func(c *gin.Context) {
		v, err := d.Brands.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.BrandRequest{Name: v.Name, LogoURL: v.LogoURL, Active: v.Active}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Brand", Action: "/admin/brands/" + v.ID, BackPath: "/admin/brands", Fields: fields(req, nil)})
	})
	g.POST("/brands/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.BrandRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Brand", Action: "/admin/brands/" + id, BackPath: "/admin/brands", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Brands.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/brands", view.FlashSuccess, "Brand updated.")
	})
}
