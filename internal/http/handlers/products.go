package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/http/middleware"
	"github.com/movshovich/scarves-store/internal/http/render"
	"github.com/movshovich/scarves-store/internal/metrics"
	"github.com/movshovich/scarves-store/internal/shared/apperr"
	"github.com/movshovich/scarves-store/pkg/view"
)

// ProductsHandler serves the per-product detail page.
type ProductsHandler struct {
	catalog *catalog.Catalog
}

func NewProductsHandler(cat *catalog.Catalog) *ProductsHandler {
	return &ProductsHandler{catalog: cat}
}

func (h *ProductsHandler) Show(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.catalog.BySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			render.Page(c, http.StatusNotFound, "product_notfound.tmpl", gin.H{
				"Slug": slug,
			})
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	metrics.RecordProductView(p.Slug)
	render.Page(c, http.StatusOK, "product.tmpl", gin.H{
		"Product": mapProductPage(p),
	})
}

func mapProductPage(p catalog.Product) view.ProductPage {
	vm := view.ProductPage{
		ID:              p.ID,
		Slug:            p.Slug,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           view.MoneyFromCents(p.PriceCents),
		Palette:         p.Palette,
		Fabric:          p.Fabric,
		Background:      p.Background,
		Badge:           p.Badge,
		Images:          p.Images,
		Dimensions:      p.Details.Dimensions,
		Weight:          p.Details.Weight,
		Care:            p.Details.Care,
		Origin:          p.Details.Origin,
		Features:        p.Features,
		InStock:         p.InStock,
	}
	if p.OnSale() {
		vm.CompareAt = view.MoneyFromCents(p.CompareAtCents)
	}
	if p.Limited != nil {
		vm.LimitedRemaining = p.Limited.Remaining
		vm.LimitedTotal = p.Limited.Total
	}
	for _, v := range p.Variants {
		vm.Variants = append(vm.Variants, view.VariantOption{
			ID:      v.ID,
			Size:    v.Size,
			SKU:     v.SKU,
			InStock: v.InStock,
		})
	}
	return vm
}
