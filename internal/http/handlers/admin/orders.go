package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/handlers"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/apperr"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

// registerOrders mounts the admin order list with its filter bar and
// the per-row status update. Orders are never deleted, only moved
// through statuses.
func registerOrders(g *gin.RouterGroup, d Deps) {
	g.GET("/orders", func(c *gin.Context) { adminOrderList(c, d) })

	g.POST("/orders/:id/status", func(c *gin.Context) {
		status := api.OrderStatus(c.PostForm("status"))
		if !api.ValidOrderStatus(status) {
			middleware.Fail(c, apperr.InvalidErr("Unknown order status.", map[string]string{"status": "Pick one of the listed statuses."}))
			return
		}
		if _, err := d.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
			middleware.Fail(c, err)
			return
		}
		render.RedirectWithFlash(c, d.Flash, "/admin/orders", view.FlashSuccess, "Order status updated.")
	})
}

func adminOrderList(c *gin.Context, d Deps) {
	ctx := c.Request.Context()

	filter, err := api.ParseOrderFilter(c.Request.URL.Query())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	req := handlers.PageRequestFromQuery(c)
	page, fetchErr := d.Orders.AdminList(ctx, req, filter)

	statuses := make([]string, 0, len(api.OrderStatuses))
	for _, s := range api.OrderStatuses {
		statuses = append(statuses, string(s))
	}

	vm := view.AdminOrdersPage{
		Statuses:     statuses,
		FilterStatus: string(filter.Status),
		FilterSearch: filter.Search,
	}
	if filter.From != nil {
		vm.FilterFrom = filter.From.Format("2006-01-02")
	}
	if filter.To != nil {
		vm.FilterTo = filter.To.Format("2006-01-02")
	}

	tbl := view.Table{
		Title:    "Orders",
		BasePath: "/admin/orders",
		Headers:  []string{"Number", "Customer", "Placed", "Status", "Items", "Total"},
	}
	if fetchErr != nil {
		d.Log.Warn("admin_orders_fetch_failed", "err", fetchErr)
		tbl.Error = "This list could not be loaded. Please try again."
	} else {
		for _, o := range page.Items {
			tbl.Rows = append(tbl.Rows, view.Row{
				ID: o.ID,
				Cells: []string{
					o.Number,
					o.CustomerID,
					format.Date(o.CreatedAt),
					string(o.Status),
					strconv.Itoa(o.ItemCount),
					format.MoneyFromCents(o.TotalCents, o.Currency),
				},
			})
		}
		tbl.Pagination = handlers.PaginationView(page)
	}
	vm.Table = tbl

	render.HTML(c, http.StatusOK, "admin_orders.tmpl", gin.H{"Page": vm, "Title": "Orders"})
}
