package admin

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/mailer"
)

// Deps is everything the dashboard needs, wired once in the router.
type Deps struct {
	Flash *flash.Codec
	Log   *slog.Logger

	Products    *api.ProductService
	Categories  *api.CategoryService
	Brands      *api.BrandService
	Customers   *api.CustomerService
	Vendors     *api.VendorService
	Users       *api.UserService
	Roles       *api.RoleService
	Permissions *api.PermissionService
	Heroes      *api.HeroService
	HotDeals    *api.HotDealService
	Orders      *api.OrderService
	Email       *api.EmailService

	Mailer   mailer.Service
	MailFrom string
}

// Register mounts every dashboard screen under the given group. The
// group already carries RequireAdmin.
func Register(g *gin.RouterGroup, d Deps) {
	registerProducts(g, d)
	registerCategories(g, d)
	registerBrands(g, d)
	registerCustomers(g, d)
	registerVendors(g, d)
	registerUsers(g, d)
	registerRoles(g, d)
	registerPermissions(g, d)
	registerHeroes(g, d)
	registerHotDeals(g, d)
	registerOrders(g, d)
	registerEmail(g, d)
}
