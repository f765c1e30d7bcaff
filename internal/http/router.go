// Package http assembles the gin engine: middleware chain, template
// renderer, storefront and dashboard routes.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/config"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/guestid"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/handlers"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/handlers/admin"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/mailer"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/store"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/templates"
)

const cartBadgeCookie = "nexa_cart_count"

// NewRouter wires the whole front-end together around one backend
// client.
func NewRouter(cfg *config.Config, client *api.Client, mail mailer.Service, log *slog.Logger) (*gin.Engine, error) {
	tpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	secret := []byte(cfg.CookieSecret)
	flashCodec := flash.NewCodec(secret, cfg.FlashCookieName, cfg.SecureCookies)
	guestCodec := guestid.New(secret, cfg.GuestCookieName, cfg.SecureCookies)

	products := api.NewProductService(client)
	categories := api.NewCategoryService(client)
	brands := api.NewBrandService(client)
	customers := api.NewCustomerService(client)
	vendors := api.NewVendorService(client)
	users := api.NewUserService(client)
	roles := api.NewRoleService(client)
	permissions := api.NewPermissionService(client)
	heroes := api.NewHeroService(client)
	hotDeals := api.NewHotDealService(client)
	orders := api.NewOrderService(client)
	carts := api.NewCartService(client)
	wishlists := api.NewWishlistService(client)
	email := api.NewEmailService(client)

	wishlistRegistry := store.NewRegistry(wishlists, log)

	r := gin.New()
	r.SetHTMLTemplate(tpl)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Session(middleware.SessionCfg{
		CookieName: cfg.AuthCookieName,
		JWTSecret:  []byte(cfg.AuthJWTSecret),
	}))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.CartBadge(middleware.CartBadgeCfg{CookieName: cartBadgeCookie}))
	r.Use(middleware.ErrorHandler(log))

	r.Static("/static", "./static")

	home := handlers.NewHomeHandler(heroes, hotDeals, log)
	prod := handlers.NewProductsHandler(products, wishlistRegistry, log)
	cart := handlers.NewCartHandler(carts, guestCodec, flashCodec, cartBadgeCookie, cfg.SecureCookies, log)
	wish := handlers.NewWishlistHandler(wishlistRegistry, flashCodec)
	ord := handlers.NewOrdersHandler(orders, carts, flashCodec, cartBadgeCookie, cfg.SecureCookies, log)
	reg := handlers.NewRegisterHandler(customers, flashCodec)
	auth := handlers.NewAuthHandler(cfg.BackendBaseURL+"/auth/login", cfg.AuthCookieName, cfg.SecureCookies, flashCodec)

	r.GET("/", home.Index)
	r.GET("/products", prod.List)
	r.GET("/products/:slug", prod.Detail)

	r.GET("/cart", cart.Show)
	r.POST("/cart/items", cart.AddItem)
	r.POST("/cart/items/:productID", cart.UpdateQuantity)
	r.POST("/cart/items/:productID/remove", cart.RemoveItem)
	r.POST("/cart/clear", cart.Clear)

	r.GET("/register", reg.Form)
	r.POST("/register", reg.Submit)
	r.GET("/login", auth.Login)
	r.POST("/logout", auth.Logout)

	authed := r.Group("/", middleware.RequireAuth(flashCodec))
	{
		authed.GET("/wishlist", wish.Show)
		authed.POST("/wishlist/toggle", wish.Toggle)
		authed.POST("/wishlist/items/:productID/remove", wish.Remove)

		authed.GET("/orders", ord.History)
		authed.GET("/orders/:id", ord.Detail)
		authed.GET("/orders/:id/receipt", ord.Receipt)
		authed.GET("/checkout", ord.CheckoutForm)
		authed.POST("/checkout", ord.PlaceOrder)
	}

	adm := r.Group("/admin", middleware.RequireAuth(flashCodec), middleware.RequireAdmin(flashCodec))
	admin.Register(adm, admin.Deps{
		Flash:       flashCodec,
		Log:         log,
		Products:    products,
		Categories:  categories,
		Brands:      brands,
		Customers:   customers,
		Vendors:     vendors,
		Users:       users,
		Roles:       roles,
		Permissions: permissions,
		Heroes:      heroes,
		HotDeals:    hotDeals,
		Orders:      orders,
		Email:       email,
		Mailer:      mail,
		MailFrom:    cfg.SMTPFrom,
	})

	return r, nil
}
