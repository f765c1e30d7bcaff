package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func customerDescriptor(svc *api.CustomerService) listing.Descriptor[api.Customer] {
	return listing.Descriptor[api.Customer]{
		Name: "customers",
		Columns: []listing.Column[api.Customer]{
			{Header: "Name", Cell: func(v api.Customer) string { return v.FirstName + " " + v.LastName }},
			{Header: "Email", Cell: func(v api.Customer) string { return v.Email }},
			{Header: "Phone", Cell: func(v api.Customer) string { return v.Phone }},
			{Header: "Active", Cell: func(v api.Customer) string { return yesNo(v.Active) }},
			{Header: "Joined", Cell: func(v api.Customer) string { return format.Date(v.CreatedAt) }},
		},
		RowID:      func(v api.Customer) string { return v.ID },
		SearchText: func(v api.Customer) string { return v.FirstName + " " + v.LastName + " " + v.Email },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerCustomers(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Customers", BasePath: "/admin/customers"}
	registerListRoutes(g, d.Flash, "/customers", customerDescriptor(d.Customers), opts)

	fields := func(req api.CustomerRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "First name", Name: "first_name", Kind: "text", Value: req.FirstName, Error: errs["first_name"]},
			{Label: "Last name", Name: "last_name", Kind: "text", Value: req.LastName, Error: errs["last_name"]},
			{Label: "Email", Name: "email", Kind: "email", Value: req.Email, Error: errs["email"]},
			{Label: "Phone", Name: "phone", Kind: "text", Value: req.Phone, Error: errs["phone"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}
	}

	g.GET("/customers/:id/edit", func(c *gin.Context) {
		v, err := d.Customers.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.CustomerRequest{FirstName: v.FirstName, LastName: v.LastName, Email: v.Email, Phone: v.Phone, Active: v.Active}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Customer", Action: "/admin/customers/" + v.ID, BackPath: "/admin/customers", Fields: fields(req, nil)})
	})
	g.POST("/customers/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.CustomerRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Customer", Action: "/admin/customers/" + id, BackPath: "/admin/customers", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Customers.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/customers", view.FlashSuccess, "Customer updated.")
	})
}

func vendorDescriptor(svc *api.VendorService) listing.Descriptor[api.Vendor] {
	return listing.Descriptor[api.Vendor]{
		Name: "vendors",
		Columns: []listing.Column[api.Vendor]{
			{Header: "Name", Cell: func(v api.Vendor) string { return v.Name }},
			{Header: "Shop", Cell: func(v api.Vendor) string { return v.ShopName }},
			{Header: "Email", Cell: func(v api.Vendor) string { return v.Email }},
			{Header: "Status", Cell: func(v api.Vendor) string { return v.Status }},
			{Header: "Joined", Cell: func(v api.Vendor) string { return format.Date(v.CreatedAt) }},
		},
		RowID:      func(v api.Vendor) string { return v.ID },
		SearchText: func(v api.Vendor) string { return v.Name + " " + v.ShopName + " " + v.Email },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerVendors(g *gin.RouterGroup, d Deps) {
	opts := listOptions{
		Title:     "Vendors",
		BasePath:  "/admin/vendors",
		CanCreate: true,
		Actions: []view.RowAction{
			{Label: "Approve", Suffix: "approve"},
			{Label: "Suspend", Suffix: "suspend"},
		},
	}
	registerListRoutes(g, d.Flash, "/vendors", vendorDescriptor(d.Vendors), opts)

	// Pending vendors get approved or suspended from the list.
	g.POST("/vendors/:id/approve", func(c *gin.Context) {
		if _, err := d.Vendors.Approve(c.Request.Context(), c.Param("id")); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/vendors", view.FlashSuccess, "Vendor approved.")
	})
	g.POST("/vendors/:id/suspend", func(c *gin.Context) {
		if _, err := d.Vendors.Suspend(c.Request.Context(), c.Param("id")); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/vendors", view.FlashWarning, "Vendor suspended.")
	})

	fields := func(req api.VendorRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
			{Label: "Email", Name: "email", Kind: "email", Value: req.Email, Error: errs["email"]},
			{Label: "Shop name", Name: "shop_name", Kind: "text", Value: req.ShopName, Error: errs["shop_name"]},
		}
	}

	g.GET("/vendors/new", func(c *gin.Context) {
		renderForm(c, http.StatusOK, formVM{Title: "New Vendor", Action: "/admin/vendors", BackPath: "/admin/vendors", Fields: fields(api.VendorRequest{}, nil)})
	})
	g.POST("/vendors", func(c *gin.Context) {
		var req api.VendorRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Vendor", Action: "/admin/vendors", BackPath: "/admin/vendors", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Vendors.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/vendors", view.FlashSuccess, "Vendor created.")
	})
	g.GET("/vendors/:id/edit", func(c *gin.Context) {
		v, err := d.Vendors.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.VendorRequest{Name: v.Name, Email: v.Email, ShopName: v.ShopName}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Vendor", Action: "/admin/vendors/" + v.ID, BackPath: "/admin/vendors", Fields: fields(req, nil)})
	})
	g.POST("/vendors/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.VendorRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Vendor", Action: "/admin/vendors/" + id, BackPath: "/admin/vendors", Fields: fields(req, validation.FromBindError(err, &req))})
			return
		}
		if _, err := d.Vendors.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/vendors", view.FlashSuccess, "Vendor updated.")
	})
}
