package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func userDescriptor(svc *api.UserService) listing.Descriptor[api.User] {
	return listing.Descriptor[api.User]{
		Name: "users",
		Columns: []listing.Column[api.User]{
			{Header: "Name", Cell: func(v api.User) string { return v.Name }},
			{Header: "Email", Cell: func(v api.User) string { return v.Email }},
			{Header: "Role", Cell: func(v api.User) string { return v.RoleName }},
			{Header: "Active", Cell: func(v api.User) string { return yesNo(v.Active) }},
		},
		RowID:      func(v api.User) string { return v.ID },
		SearchText: func(v api.User) string { return v.Name + " " + v.Email + " " + v.RoleName },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerUsers(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Users", BasePath: "/admin/users", CanCreate: true}
	registerListRoutes(g, d.Flash, "/users", userDescriptor(d.Users), opts)

	fields := func(ctx context.Context, req api.UserRequest, errs validation.FieldErrors) ([]formField, error) {
		roles, err := d.Roles.All(ctx)
		if err != nil {
			return nil, err
		}
		roleOpts := make([]formOption, 0, len(roles))
		for _, r := range roles {
			roleOpts = append(roleOpts, formOption{Value: r.ID, Label: r.Name})
		}
		return []formField{
			{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
			{Label: "Email", Name: "email", Kind: "email", Value: req.Email, Error: errs["email"]},
			{Label: "Role", Name: "role_id", Kind: "select", Value: req.RoleID, Options: roleOpts, Error: errs["role_id"]},
			{Label: "Password", Name: "password", Kind: "password", Error: errs["password"]},
			{Label: "Active", Name: "active", Kind: "checkbox", Value: boolValue(req.Active), Error: errs["active"]},
		}, nil
	}

	g.GET("/users/new", func(c *gin.Context) {
		fs, err := fields(c.Request.Context(), api.UserRequest{Active: true}, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "New User", Action: "/admin/users", BackPath: "/admin/users", Fields: fs})
	})
	g.POST("/users", func(c *gin.Context) {
		var req api.UserRequest
		if err := c.ShouldBind(&req); err != nil {
			fs, ferr := fields(c.Request.Context(), req, validation.FromBindError(err, &req))
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New User", Action: "/admin/users", BackPath: "/admin/users", Fields: fs})
			return
		}
		if _, err := d.Users.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/users", view.FlashSuccess, "User created.")
	})
	g.GET("/users/:id/edit", func(c *gin.Context) {
		v, err := d.Users.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.UserRequest{Name: v.Name, Email: v.Email, RoleID: v.RoleID, Active: v.Active}
		fs, err := fields(c.Request.Context(), req, nil)
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		renderForm(c, http.StatusOK, formVM{Title: "Edit User", Action: "/admin/users/" + v.ID, BackPath: "/admin/users", Fields: fs})
	})
	g.POST("/users/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.UserRequest
		if err := c.ShouldBind(&req); err != nil {
			fs, ferr := fields(c.Request.Context(), req, validation.FromBindError(err, &req))
			if ferr != nil {
				middleware.Fail(c, ferr)
				return
			}
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit User", Action: "/admin/users/" + id, BackPath: "/admin/users", Fields: fs})
			return
		}
		if _, err := d.Users.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/users", view.FlashSuccess, "User updated.")
	})
	g.POST("/users/:id/role", func(c *gin.Context) {
		if _, err := d.Users.AssignRole(c.Request.Context(), c.Param("id"), c.PostForm("role_id")); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/users", view.FlashSuccess, "Role assigned.")
	})
}

func roleDescriptor(svc *api.RoleService) listing.Descriptor[api.Role] {
	return listing.Descriptor[api.Role]{
		Name: "roles",
		Columns: []listing.Column[api.Role]{
			{Header: "Name", Cell: func(v api.Role) string { return v.Name }},
			{Header: "Description", Cell: func(v api.Role) string { return v.Description }},
			{Header: "Permissions", Cell: func(v api.Role) string { return strconv.Itoa(len(v.Permissions)) }},
		},
		RowID:      func(v api.Role) string { return v.ID },
		SearchText: func(v api.Role) string { return v.Name + " " + v.Description },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerRoles(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Roles", BasePath: "/admin/roles", CanCreate: true}
	registerListRoutes(g, d.Flash, "/roles", roleDescriptor(d.Roles), opts)

	h := &roleForms{d: d}
	g.GET("/roles/new", h.newForm)
	g.POST("/roles", h.create)
	g.GET("/roles/:id/edit", h.editForm)
	g.POST("/roles/:id", h.update)
}

type roleForms struct {
	d Deps
}

type rolePermOption struct {
	ID      string
	Name    string
	Checked bool
}

type roleFormVM struct {
	Title       string
	Action      string
	Name        string
	Description string
	Permissions []rolePermOption
	Errors      validation.FieldErrors
}

func (h *roleForms) permissionOptions(ctx context.Context, selected []string) ([]rolePermOption, error) {
	perms, err := h.d.Permissions.All(ctx)
	if err != nil {
		return nil, err
	}
	chosen := make(map[string]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}
	out := make([]rolePermOption, 0, len(perms))
	for _, p := range perms {
		out = append(out, rolePermOption{ID: p.ID, Name: p.Name, Checked: chosen[p.ID]})
	}
	return out, nil
}

func (h *roleForms) show(c *gin.Context, status int, vm roleFormVM) {
	render.HTML(c, status, "admin_role_form.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

func (h *roleForms) newForm(c *gin.Context) {
	perms, err := h.permissionOptions(c.Request.Context(), nil)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.show(c, http.StatusOK, roleFormVM{Title: "New Role", Action: "/admin/roles", Permissions: perms})
}

func (h *roleForms) create(c *gin.Context) {
	var req api.RoleRequest
	if err := c.ShouldBind(&req); err != nil {
		perms, perr := h.permissionOptions(c.Request.Context(), req.PermissionIDs)
		if perr != nil {
			middleware.Fail(c, perr)
			return
		}
		h.show(c, http.StatusUnprocessableEntity, roleFormVM{
			Title: "New Role", Action: "/admin/roles",
			Name: req.Name, Description: req.Description,
			Permissions: perms, Errors: validation.FromBindError(err, &req),
		})
		return
	}
	if _, err := h.d.Roles.Create(c.Request.Context(), req); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.d.Flash, "/admin/roles", view.FlashSuccess, "Role created.")
}

func (h *roleForms) editForm(c *gin.Context) {
	role, err := h.d.Roles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	ids := make([]string, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		ids = append(ids, p.ID)
	}
	perms, err := h.permissionOptions(c.Request.Context(), ids)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.show(c, http.StatusOK, roleFormVM{
		Title: "Edit Role", Action: "/admin/roles/" + role.ID,
		Name: role.Name, Description: role.Description, Permissions: perms,
	})
}

func (h *roleForms) update(c *gin.Context) {
	id := c.Param("id")
	var req api.RoleRequest
	if err := c.ShouldBind(&req); err != nil {
		perms, perr := h.permissionOptions(c.Request.Context(), req.PermissionIDs)
		if perr != nil {
			middleware.Fail(c, perr)
			return
		}
		h.show(c, http.StatusUnprocessableEntity, roleFormVM{
			Title: "Edit Role", Action: "/admin/roles/" + id,
			Name: req.Name, Description: req.Description,
			Permissions: perms, Errors: validation.FromBindError(err, &req),
		})
		return
	}
	if _, err := h.d.Roles.Update(c.Request.Context(), id, req); err != nil {
		middleware.Fail(c, err)
		return
	}
	render.RedirectWithFlash(c, h.d.Flash, "/admin/roles", view.FlashSuccess, "Role updated.")
}

func permissionDescriptor(svc *api.PermissionService) listing.Descriptor[api.Permission] {
	return listing.Descriptor[api.Permission]{
		Name: "permissions",
		Columns: []listing.Column[api.Permission]{
			{Header: "Name", Cell: func(v api.Permission) string { return v.Name }},
			{Header: "Description", Cell: func(v api.Permission) string { return v.Description }},
		},
		RowID:      func(v api.Permission) string { return v.ID },
		SearchText: func(v api.Permission) string { return v.Name + " " + v.Description },
		Fetch:      svc.List,
		Delete:     svc.Delete,
	}
}

func registerPermissions(g *gin.RouterGroup, d Deps) {
	opts := listOptions{Title: "Permissions", BasePath: "/admin/permissions", CanCreate: true}
	registerListRoutes(g, d.Flash, "/permissions", permissionDescriptor(d.Permissions), opts)

	fields := func(req api.PermissionRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "Name", Name: "name", Kind: "text", Value: req.Name, Error: errs["name"]},
			{Label: "Description", Name: "description", Kind: "text", Value: req.Description, Error: errs["description"]},
		}
	}

	// Permission names follow the UPPER_SNAKE convention; checked here
	// so the form can point at the field instead of bouncing off the
	// backend.
	bind := func(c *gin.Context) (api.PermissionRequest, validation.FieldErrors) {
		var req api.PermissionRequest
		errs := validation.FieldErrors{}
		if err := c.ShouldBind(&req); err != nil {
			errs = validation.FromBindError(err, &req)
		}
		req.Name = strings.TrimSpace(req.Name)
		if _, ok := errs["name"]; !ok && req.Name != "" {
			if err := validation.PermissionName(req.Name); err != nil {
				errs["name"] = err.Error()
			}
		}
		return req, errs
	}

	g.GET("/permissions/new", func(c *gin.Context) {
		renderForm(c, http.StatusOK, formVM{Title: "New Permission", Action: "/admin/permissions", BackPath: "/admin/permissions", Fields: fields(api.PermissionRequest{}, nil)})
	})
	g.POST("/permissions", func(c *gin.Context) {
		req, errs := bind(c)
		if errs.Any() {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "New Permission", Action: "/admin/permissions", BackPath: "/admin/permissions", Fields: fields(req, errs)})
			return
		}
		if _, err := d.Permissions.Create(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/permissions", view.FlashSuccess, "Permission created.")
	})
	g.GET("/permissions/:id/edit", func(c *gin.Context) {
		v, err := d.Permissions.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.PermissionRequest{Name: v.Name, Description: v.Description}
		renderForm(c, http.StatusOK, formVM{Title: "Edit Permission", Action: "/admin/permissions/" + v.ID, BackPath: "/admin/permissions", Fields: fields(req, nil)})
	})
	g.POST("/permissions/:id", func(c *gin.Context) {
		id := c.Param("id")
		req, errs := bind(c)
		if errs.Any() {
			renderForm(c, http.StatusUnprocessableEntity, formVM{Title: "Edit Permission", Action: "/admin/permissions/" + id, BackPath: "/admin/permissions", Fields: fields(req, errs)})
			return
		}
		if _, err := d.Permissions.Update(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/permissions", view.FlashSuccess, "Permission updated.")
	})
}
