package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/mailer"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type emailSettingsVM struct {
	Title     string
	Settings  api.EmailSettings
	Templates []api.EmailTemplate
	Error     string
}

func registerEmail(g *gin.RouterGroup, d Deps) {
	g.GET("/email/settings", func(c *gin.Context) { emailSettingsPage(c, d) })

	g.POST("/email/settings", func(c *gin.Context) {
		var req api.EmailSettingsRequest
		if err := c.ShouldBind(&req); err != nil {
			render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashError,
				validation.FromBindError(err, &req).First())
			return
		}
		if _, err := d.Email.UpdateSettings(c.Request.Context(), req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashSuccess, "Email settings saved.")
	})

	// Test mail goes out through the local mailer, not the backend;
	// that is the whole point of the button.
	g.POST("/email/test", func(c *gin.Context) {
		to := c.PostForm("to")
		if to == "" {
			render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashError, "A recipient address is required.")
			return
		}
		err := d.Mailer.Send(c.Request.Context(), mailer.Email{
			From:     d.MailFrom,
			FromName: "NexaCommerce",
			To:       []string{to},
			Subject:  "NexaCommerce test mail",
			TextBody: "This is a test message from your NexaCommerce dashboard. If you can read this, outgoing mail works.",
		})
		if err != nil {
			d.Log.Warn("test_mail_failed", "to", to, "err", err)
			render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashError, "The test mail could not be sent.")
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashSuccess, "Test mail sent to "+to+".")
	})

	templateFields := func(req api.EmailTemplateRequest, errs validation.FieldErrors) []formField {
		return []formField{
			{Label: "Subject", Name: "subject", Kind: "text", Value: req.Subject, Error: errs["subject"]},
			{Label: "Body", Name: "body", Kind: "textarea", Value: req.Body, Error: errs["body"]},
		}
	}

	g.GET("/email/templates/:id/edit", func(c *gin.Context) {
		t, err := d.Email.GetTemplate(c.Request.Context(), c.Param("id"))
		if err != nil {
			middleware.Fail(c, err)
			return
		}
		req := api.EmailTemplateRequest{Subject: t.Subject, Body: t.Body}
		renderForm(c, http.StatusOK, formVM{
			Title:    "Edit Template: " + t.Name,
			Action:   "/admin/email/templates/" + t.ID,
			BackPath: "/admin/email/settings",
			Fields:   templateFields(req, nil),
		})
	})
	g.POST("/email/templates/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req api.EmailTemplateRequest
		if err := c.ShouldBind(&req); err != nil {
			renderForm(c, http.StatusUnprocessableEntity, formVM{
				Title:    "Edit Template",
				Action:   "/admin/email/templates/" + id,
				BackPath: "/admin/email/settings",
				Fields:   templateFields(req, validation.FromBindError(err, &req)),
			})
			return
		}
		if _, err := d.Email.UpdateTemplate(c.Request.Context(), id, req); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/email/settings", view.FlashSuccess, "Template saved.")
	})
}

func emailSettingsPage(c *gin.Context, d Deps) {
	ctx := c.Request.Context()
	vm := emailSettingsVM{Title: "Email Settings"}

	settings, err := d.Email.GetSettings(ctx)
	if err != nil {
		d.Log.Warn("email_settings_fetch_failed", "err", err)
		vm.Error = "Email settings could not be loaded. Please try again."
		render.HTML(c, http.StatusOK, "email_settings.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}
	vm.Settings = settings

	page, err := d.Email.Templates(ctx, api.PageRequest{Size: 50})
	if err != nil {
		d.Log.Warn("email_templates_fetch_failed", "err", err)
	} else {
		vm.Templates = page.Items
	}

	render.HTML(c, http.StatusOK, "email_settings.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}
