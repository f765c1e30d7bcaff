package api

import (
	"context"
	"net/http"
)

// Email settings and templates managed from the dashboard. The backend
// stores them; sending a test mail happens locally through the mailer.

type EmailSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	From     string `json:"from"`
	UseTLS   bool   `json:"useTls"`
}

type EmailSettingsRequest struct {
	Host     string `json:"host" form:"host" binding:"required"`
	Port     int    `json:"port" form:"port" binding:"required"`
	Username string `json:"username" form:"username"`
	Password string `json:"password,omitempty" form:"password"`
	From     string `json:"from" form:"from" binding:"required,email"`
	UseTLS   bool   `json:"useTls" form:"use_tls"`
}

type EmailTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type EmailTemplateRequest struct {
	Subject string `json:"subject" form:"subject" binding:"required"`
	Body    string `json:"body" form:"body" binding:"required"`
}

type EmailService struct {
	c *Client
}

func NewEmailService(c *Client) *EmailService { return &EmailService{c: c} }

func (s *EmailService) GetSettings(ctx context.Context) (EmailSettings, error) {
	return Call[EmailSettings](ctx, s.c, http.MethodGet, "/email/settings", nil, nil)
}

func (s *EmailService) UpdateSettings(ctx context.Context, req EmailSettingsRequest) (EmailSettings, error) {
	return Call[EmailSettings](ctx, s.c, http.MethodPut, "/email/settings", nil, req)
}

func (s *EmailService) Templates(ctx context.Context, req PageRequest) (Page[EmailTemplate], error) {
	return Call[Page[EmailTemplate]](ctx, s.c, http.MethodGet, "/email/templates", req.Query(), nil)
}

func (s *EmailService) GetTemplate(ctx context.Context, id string) (EmailTemplate, error) {
	return Call[EmailTemplate](ctx, s.c, http.MethodGet, "/email/templates/"+id, nil, nil)
}

func (s *EmailService) UpdateTemplate(ctx context.Context, id string, req EmailTemplateRequest) (EmailTemplate, error) {
	return Call[EmailTemplate](ctx, s.c, http.MethodPut, "/email/templates/"+id, nil, req)
}
