package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/http/render"
	"github.com/movshovich/scarves-store/pkg/view"
)

// HomeHandler serves the landing page with the collection grid.
type HomeHandler struct {
	catalog *catalog.Catalog
}

func NewHomeHandler(cat *catalog.Catalog) *HomeHandler {
	return &HomeHandler{catalog: cat}
}

func (h *HomeHandler) Index(c *gin.Context) {
	render.Page(c, http.StatusOK, "home.tmpl", gin.H{
		"Products": mapProductCards(h.catalog.List()),
	})
}

func mapProductCards(items []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		card := view.ProductCard{
			Slug:        p.Slug,
			Name:        p.Name,
			Description: p.Description,
			Price:       view.MoneyFromCents(p.PriceCents),
			Palette:     p.Palette,
			Fabric:      p.Fabric,
			Background:  p.Background,
			Badge:       p.Badge,
		}
		if p.OnSale() {
			card.CompareAt = view.MoneyFromCents(p.CompareAtCents)
		}
		if p.Limited != nil {
			card.LimitedRemaining = p.Limited.Remaining
			card.LimitedTotal = p.Limited.Total
		}
		out = append(out, card)
	}
	return out
}
