package api

import (
	"context"
	"net/http"
)

// Dashboard users, roles and permissions. Authorization itself is
// enforced by the backend; these clients only manage the records.

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
	Active   bool   `json:"active"`
}

type UserRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	RoleID   string `json:"roleId" form:"role_id"`
	Active   bool   `json:"active" form:"active"`
	Password string `json:"password,omitempty" form:"password"`
}

type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService { return &UserService{c: c} }

func (s *UserService) List(ctx context.Context, req PageRequest) (Page[User], error) {
	return Call[Page[User]](ctx, s.c, http.MethodGet, "/users", req.Query(), nil)
}

func (s *UserService) Get(ctx context.Context, id string) (User, error) {
	return Call[User](ctx, s.c, http.MethodGet, "/users/"+id, nil, nil)
}

func (s *UserService) Create(ctx context.Context, req UserRequest) (User, error) {
	return Call[User](ctx, s.c, http.MethodPost, "/users", nil, req)
}

func (s *UserService) Update(ctx context.Context, id string, req UserRequest) (User, error) {
	return Call[User](ctx, s.c, http.MethodPut, "/users/"+id, nil, req)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/users/"+id, nil, nil)
	return err
}

func (s *UserService) AssignRole(ctx context.Context, id, roleID string) (User, error) {
	body := map[string]string{"roleId": roleID}
	return Call[User](ctx, s.c, http.MethodPatch, "/users/"+id+"/role", nil, body)
}

type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

type RoleRequest struct {
	Name          string   `json:"name" form:"name" binding:"required"`
	Description   string   `json:"description" form:"description"`
	PermissionIDs []string `json:"permissionIds" form:"permission_ids"`
}

type RoleService struct {
	c *Client
}

func NewRoleService(c *Client) *RoleService { return &RoleService{c: c} }

func (s *RoleService) List(ctx context.Context, req PageRequest) (Page[Role], error) {
	return Call[Page[Role]](ctx, s.c, http.MethodGet, "/roles", req.Query(), nil)
}

func (s *RoleService) All(ctx context.Context) ([]Role, error) {
	return Call[[]Role](ctx, s.c, http.MethodGet, "/roles/all", nil, nil)
}

func (s *RoleService) Get(ctx context.Context, id string) (Role, error) {
	return Call[Role](ctx, s.c, http.MethodGet, "/roles/"+id, nil, nil)
}

func (s *RoleService) Create(ctx context.Context, req RoleRequest) (Role, error) {
	return Call[Role](ctx, s.c, http.MethodPost, "/roles", nil, req)
}

func (s *RoleService) Update(ctx context.Context, id string, req RoleRequest) (Role, error) {
	return Call[Role](ctx, s.c, http.MethodPut, "/roles/"+id, nil, req)
}

func (s *RoleService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/roles/"+id, nil, nil)
	return err
}

type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PermissionRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type PermissionService struct {
	c *Client
}

func NewPermissionService(c *Client) *PermissionService { return &PermissionService{c: c} }

func (s *PermissionService) List(ctx context.Context, req PageRequest) (Page[Permission], error) {
	return Call[Page[Permission]](ctx, s.c, http.MethodGet, "/permissions", req.Query(), nil)
}

func (s *PermissionService) All(ctx context.Context) ([]Permission, error) {
	return Call[[]Permission](ctx, s.c, http.MethodGet, "/permissions/all", nil, nil)
}

func (s *PermissionService) Get(ctx context.Context, id string) (Permission, error) {
	return Call[Permission](ctx, s.c, http.MethodGet, "/permissions/"+id, nil, nil)
}

func (s *PermissionService) Create(ctx context.Context, req PermissionRequest) (Permission, error) {
	return Call[Permission](ctx, s.c, http.MethodPost, "/permissions", nil, req)
}

func (s *PermissionService) Update(ctx context.Context, id string, req PermissionRequest) (Permission, error) {
	return Call[Permission](ctx, s.c, http.MethodPut, "/permissions/"+id, nil, req)
}

func (s *PermissionService) Delete(ctx context.Context, id string) error {
	_, err := Call[struct{}](ctx, s.c, http.MethodDelete, "/permissions/"+id, nil, nil)
	return err
}
