// Package admin holds the dashboard handlers. Every entity list runs
// through the same screen engine; a new entity is a descriptor plus its
// form handlers, not another hand-copied list page.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/export"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/flash"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/handlers"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/middleware"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/listing"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type listOptions struct {
	Title     string
	BasePath  string
	CanCreate bool
	Export    bool
	Actions   []view.RowAction
}

// renderList drives one request through the screen engine: build,
// filter, load, snapshot, render. The failed state renders in place of
// the table with a retry link.
func renderList[T any](c *gin.Context, d listing.Descriptor[T], opts listOptions) {
	scr := listing.NewScreen(d, handlers.PageRequestFromQuery(c))
	scr.SetFilter(c.Query("filter"))
	_ = scr.Load(c.Request.Context())
	snap := scr.Snapshot()

	tbl := view.Table{
		Title:     opts.Title,
		BasePath:  opts.BasePath,
		Headers:   scr.Headers(),
		Filter:    snap.Filter,
		Loading:   snap.State == listing.StateLoading,
		CanCreate: opts.CanCreate,
		CanToggle: d.Toggle != nil,
		CanDelete: d.Delete != nil,
		Actions:   opts.Actions,
	}
	if snap.State == listing.StateFailed {
		tbl.Error = "This list could not be loaded. Please try again."
	} else {
		cells := scr.Rows(snap.Visible)
		for i, it := range snap.Visible {
			tbl.Rows = append(tbl.Rows, view.Row{ID: d.RowID(it), Cells: cells[i]})
		}
		tbl.Pagination = handlers.PaginationView(snap.Page)
	}

	render.HTML(c, http.StatusOK, "admin_list.tmpl", gin.H{
		"Page":   tbl,
		"Title":  tbl.Title,
		"Export": opts.Export,
	})
}

// registerListRoutes wires the list page and its row actions. Actions a
// descriptor doesn't define simply have no route.
func registerListRoutes[T any](g *gin.RouterGroup, fc *flash.Codec, base string, d listing.Descriptor[T], opts listOptions) {
	g.GET(base, func(c *gin.Context) { renderList(c, d, opts) })

	if d.Delete != nil {
		g.POST(base+"/:id/delete", func(c *gin.Context) {
			if err := d.Delete(c.Request.Context(), c.Param("id")); err != nil {
				middleware.Fail(c, err)
				return
			}
			render.RedirectWithFlash(c, fc, opts.BasePath, view.FlashSuccess, "Deleted.")
		})
	}
	if d.Toggle != nil {
		g.POST(base+"/:id/toggle", func(c *gin.Context) {
			if err := d.Toggle(c.Request.Context(), c.Param("id")); err != nil {
				middleware.Fail(c, err)
				return
			}
			render.RedirectWithFlash(c, fc, opts.BasePath, view.FlashSuccess, "Status updated.")
		})
	}
	if opts.Export {
		g.GET(base+"/export", func(c *gin.Context) { exportList(c, d, opts.Title) })
	}
}

// exportList writes the requested page of the list as an XLSX download,
// same columns as the screen shows.
func exportList[T any](c *gin.Context, d listing.Descriptor[T], title string) {
	page, err := d.Fetch(c.Request.Context(), handlers.PageRequestFromQuery(c))
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	headers := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		headers[i] = col.Header
	}
	rows := make([][]string, len(page.Items))
	for i, it := range page.Items {
		row := make([]string, len(d.Columns))
		for j, col := range d.Columns {
			row[j] = col.Cell(it)
		}
		rows[i] = row
	}

	data, err := export.Table(title, headers, rows)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+d.Name+`.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, data)
}

// Form building blocks shared by every entity's create/edit pages.

type formOption struct {
	Value string
	Label string
}

type formField struct {
	Label   string
	Name    string
	Kind    string // text, number, email, password, checkbox, select, textarea, datetime-local
	Value   string
	Step    string
	Error   string
	Options []formOption
}

type formVM struct {
	Title    string
	Action   string
	BackPath string
	Fields   []formField
}

func renderForm(c *gin.Context, status int, vm formVM) {
	render.HTML(c, status, "admin_form.tmpl", gin.H{"Page": vm, "Title": vm.Title})
}

func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
