package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

func TestLoadParsesEverything(t *testing.T) {
	tpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{
		"home.tmpl", "products.tmpl", "product_detail.tmpl", "cart.tmpl",
		"wishlist.tmpl", "orders.tmpl", "order_detail.tmpl", "checkout.tmpl",
		"register.tmpl", "admin_list.tmpl", "admin_form.tmpl",
		"admin_role_form.tmpl", "admin_orders.tmpl", "email_settings.tmpl",
		"error.tmpl",
	} {
		assert.NotNil(t, tpl.Lookup(name), "template %s missing", name)
	}
}

func TestHomeRenders(t *testing.T) {
	tpl, err := Load()
	require.NoError(t, err)

	data := map[string]any{
		"Title":     "Home",
		"CartCount": 3,
		"Page": view.HomePage{
			Title:  "Home",
			Heroes: []view.HeroBanner{{Title: "Summer Sale", Subtitle: "Up to 50% off"}},
			Deals: []view.DealCard{{
				ID: "d1", ProductID: "p1", Name: "Widget", Slug: "widget",
				Price: "$12.49", DealPrice: "$8.99", Discount: 28,
				CountdownCard: "1d 02:00:15", CountdownHMS: "02:00:15",
				CTALabel: "Add to Cart",
			}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteTemplate(&buf, "home.tmpl", data))
	out := buf.String()
	assert.Contains(t, out, "Summer Sale")
	assert.Contains(t, out, "Hot Deals")
	assert.Contains(t, out, "$8.99")
	assert.Contains(t, out, "Ends in 1d 02:00:15")
}

func TestErrorPageRenders(t *testing.T) {
	tpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteTemplate(&buf, "error.tmpl", map[string]any{
		"Status":    404,
		"Message":   "Order not found.",
		"RequestID": "req-1",
	}))
	assert.Contains(t, buf.String(), "Order not found.")
	assert.Contains(t, buf.String(), "req-1")
}
