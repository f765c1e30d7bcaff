package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/validation"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type RegisterHandler struct {
	customers *api.CustomerService
	flash     *flash.Codec
}

func NewRegisterHandler(customers *api.CustomerService, fc *flash.Codec) *RegisterHandler {
	return &RegisterHandler{customers: customers, flash: fc}
}

type registerVM struct {
	Title     string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Errors    validation.FieldErrors
}

func (h *RegisterHandler) Form(c *gin.Context) {
	vm := registerVM{Title: "Register"}
	render.HTML(c, http.StatusOK, "register.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

// Submit validates locally first; the backend is only called once the
// form passes, so a typo never costs a round trip.
func (h *RegisterHandler) Submit(c *gin.Context) {
	var req api.RegisterRequest
	fieldErrs := validation.FieldErrors{}
	if err := c.ShouldBind(&req); err != nil {
		fieldErrs = validation.FromBindError(err, &req)
	}
	for k, v := range validation.PasswordPair(req.Password, req.ConfirmPassword) {
		fieldErrs[k] = v
	}

	if fieldErrs.Any() {
		vm := registerVM{
			Title:     "Register",
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Errors:    fieldErrs,
		}
		render.HTML(c, http.StatusUnprocessableEntity, "register.tmpl", gin.H{"Page": vm, "Title": vm.Title})
		return
	}

	if _, err := h.customers.Register(c.Request.Context(), req); err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Conflict {
			vm := registerVM{
				Title:     "Register",
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Email:     req.Email,
				Phone:     req.Phone,
				Errors:    validation.FieldErrors{"email": "An account with this email already exists."},
			}
			render.HTML(c, http.StatusConflict, "register.tmpl", gin.H{"Page": vm, "Title": vm.Title})
			return
		}
		middleware.Fail(c, err)
		return
	}

	render.RedirectWithFlash(c, h.flash, "/login", view.FlashSuccess, "Account created. Please sign in.")
}
