package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/checkout"
	"github.com/movshovich/scarves-store/internal/http/cartcookie"
	"github.com/movshovich/scarves-store/internal/http/flash"
	"github.com/movshovich/scarves-store/internal/http/middleware"
	"github.com/movshovich/scarves-store/internal/http/render"
	"github.com/movshovich/scarves-store/internal/metrics"
	"github.com/movshovich/scarves-store/pkg/view"
)

// CartHandler owns the cart page, the drawer endpoints, and every cart
// mutation route.
type CartHandler struct {
	Catalog  *catalog.Catalog
	Mgr      *cart.Manager
	CK       *cartcookie.Codec
	Flash    *flash.Codec
	Checkout *checkout.Service
}

func NewCartHandler(cat *catalog.Catalog, mgr *cart.Manager, ck *cartcookie.Codec, fl *flash.Codec, svc *checkout.Service) *CartHandler {
	return &CartHandler{Catalog: cat, Mgr: mgr, CK: ck, Flash: fl, Checkout: svc}
}

func (h *CartHandler) store(c *gin.Context) *cart.PersistentStore {
	id := h.CK.EnsureCartID(c)
	return h.Mgr.Get(c.Request.Context(), id)
}

// Add handles POST /cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	variantID := strings.TrimSpace(c.PostForm("variant_id"))

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = clamp(n, 1, 99)
		}
	}

	p, err := h.Catalog.ByID(productID)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "That product is no longer available.")
		return
	}
	v, ok := p.Variant(variantID)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/products/"+p.Slug, view.FlashError, "Please choose a size.")
		return
	}

	st := h.store(c)
	st.AddItem(p, v, qty)
	st.OpenDrawer()
	metrics.RecordCartOperation("add")

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Update handles POST /cart/items/update. Quantity is absolute; zero
// removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	variantID := strings.TrimSpace(c.PostForm("variant_id"))

	qty := 0
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = n
		}
	}
	qty = clamp(qty, 0, 99)

	st := h.store(c)
	st.UpdateQuantity(productID, variantID, qty)
	metrics.RecordCartOperation("update")

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Cart updated.")
}

// Remove handles POST /cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	variantID := strings.TrimSpace(c.PostForm("variant_id"))

	st := h.store(c)
	st.RemoveItem(productID, variantID)
	metrics.RecordCartOperation("remove")

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
}

// Clear handles POST /cart/clear.
func (h *CartHandler) Clear(c *gin.Context) {
	h.store(c).Clear()
	metrics.RecordCartOperation("clear")

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Cart cleared.")
}

// Page handles GET /cart.
func (h *CartHandler) Page(c *gin.Context) {
	render.Page(c, http.StatusOK, "cart.tmpl", gin.H{
		"Cart": h.buildCartPage(h.store(c)),
	})
}

// Open, Close, and Toggle mutate only the drawer visibility flag.
func (h *CartHandler) Open(c *gin.Context)   { h.drawer(c, (*cart.Store).OpenDrawer) }
func (h *CartHandler) Close(c *gin.Context)  { h.drawer(c, (*cart.Store).CloseDrawer) }
func (h *CartHandler) Toggle(c *gin.Context) { h.drawer(c, (*cart.Store).ToggleDrawer) }

func (h *CartHandler) drawer(c *gin.Context, op func(*cart.Store)) {
	st := h.store(c)
	op(st.Store)

	if middleware.WantsJSON(c) {
		c.Status(http.StatusNoContent)
		return
	}
	back := c.Request.Referer()
	if back == "" {
		back = "/"
	}
	c.Redirect(http.StatusFound, back)
}

// Summary handles GET /api/cart, the JSON fragment behind the drawer.
// Tax is never shown in the drawer.
func (h *CartHandler) Summary(c *gin.Context) {
	vm := h.buildCartPage(h.store(c))

	lines := make([]gin.H, 0, len(vm.Items))
	for _, it := range vm.Items {
		lines = append(lines, gin.H{
			"product_id": it.ProductID,
			"slug":       it.ProductSlug,
			"name":       it.ProductName,
			"variant_id": it.VariantID,
			"size":       it.Size,
			"qty":        it.Qty,
			"unit_price": it.UnitPrice,
			"line_total": it.LineTotal,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":          lines,
		"count":          vm.Count,
		"is_open":        vm.DrawerOpen,
		"subtotal_cents": vm.SubtotalCents,
		"shipping_cents": vm.ShippingCents,
		"total_cents":    vm.SubtotalCents + vm.ShippingCents,
	})
}

func (h *CartHandler) buildCartPage(st *cart.PersistentStore) view.CartPage {
	snap := st.Snapshot()
	totals := h.Checkout.Totals(st.Store)

	vm := view.CartPage{
		Items:         cartLines(snap.Items),
		Count:         snap.ItemCount(),
		DrawerOpen:    snap.Open,
		SubtotalCents: totals.SubtotalCents,
		ShippingCents: totals.ShippingCents,
		Subtotal:      view.MoneyFromCents(totals.SubtotalCents),
		Shipping:      view.FreeOrMoney(totals.ShippingCents),
		Total:         view.MoneyFromCents(totals.SubtotalCents + totals.ShippingCents),
	}

	if gap := h.Checkout.Options().FreeShippingThresholdCents - totals.SubtotalCents; gap > 0 && totals.SubtotalCents > 0 {
		vm.FreeShippingGapCents = gap
		vm.FreeShippingGap = view.MoneyFromCents(gap)
	}
	return vm
}
