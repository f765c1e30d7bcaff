package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/api"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/http/render"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/countdown"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/internal/shared/format"
	"github.com/firoze-hossain/nexacommerce-ui-sub002/pkg/view"
)

type HomeHandler struct {
	heroes *api.HeroService
	deals  *api.HotDealService
	log    *slog.Logger
}

func NewHomeHandler(heroes *api.HeroService, deals *api.HotDealService, log *slog.Logger) *HomeHandler {
	return &HomeHandler{heroes: heroes, deals: deals, log: log}
}

// Index renders the storefront home: hero carousel plus the running hot
// deals. A failed fetch renders the failed state with a retry link; it
// never half-renders stale content.
func (h *HomeHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	page := view.HomePage{Title: "Home"}

	heroes, err := h.heroes.Active(ctx)
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelWarn, "home_heroes_failed", slog.Any("err", err))
		page.Error = "We could not load the home page. Please try again."
		render.HTML(c, http.StatusOK, "home.tmpl", gin.H{"Page": page, "Title": page.Title})
		return
	}
	deals, err := h.deals.Active(ctx)
	if err != nil {
		h.log.LogAttrs(ctx, slog.LevelWarn, "home_deals_failed", slog.Any("err", err))
		page.Error = "We could not load the home page. Please try again."
		render.HTML(c, http.StatusOK, "home.tmpl", gin.H{"Page": page, "Title": page.Title})
		return
	}

	for _, hr := range heroes {
		page.Heroes = append(page.Heroes, view.HeroBanner{
			Title:    hr.Title,
			Subtitle: hr.Subtitle,
			ImageURL: hr.ImageURL,
			LinkURL:  hr.LinkURL,
		})
	}
	now := time.Now()
	for _, d := range deals {
		page.Deals = append(page.Deals, DealCard(d, now))
	}

	render.HTML(c, http.StatusOK, "home.tmpl", gin.H{"Page": page, "Title": page.Title})
}

// DealCard builds the hot-deal card, including both countdown forms:
// the day-aware one for the card face and the hour-capped one for the
// compact timer.
func DealCard(d api.HotDeal, now time.Time) view.DealCard {
	cta := "Add to Cart"
	if d.SoldOut() {
		cta = "Out of Stock"
	}
	return view.DealCard{
		ID:            d.ID,
		ProductID:     d.ProductID,
		Name:          d.ProductName,
		Slug:          d.ProductSlug,
		ImageURL:      d.ImageURL,
		Price:         format.MoneyFromCents(d.PriceCents, d.Currency),
		DealPrice:     format.MoneyFromCents(d.DealPriceCents, d.Currency),
		Discount:      d.DiscountPercent,
		CountdownCard: countdown.UntilWithDays(d.EndDate, now).String(),
		CountdownHMS:  countdown.Until(d.EndDate, now).String(),
		SoldOut:       d.SoldOut(),
		CTALabel:      cta,
	}
}
