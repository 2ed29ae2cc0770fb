package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/checkout"
	"github.com/movshovich/scarves-store/internal/http/cartcookie"
	"github.com/movshovich/scarves-store/internal/http/flash"
	"github.com/movshovich/scarves-store/internal/http/render"
	"github.com/movshovich/scarves-store/internal/http/validation"
	"github.com/movshovich/scarves-store/internal/metrics"
	"github.com/movshovich/scarves-store/pkg/view"
)

type CheckoutHandler struct {
	Mgr   *cart.Manager
	CK    *cartcookie.Codec
	Flash *flash.Codec
	Svc   *checkout.Service
}

func NewCheckoutHandler(mgr *cart.Manager, ck *cartcookie.Codec, fl *flash.Codec, svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Mgr: mgr, CK: ck, Flash: fl, Svc: svc}
}

// checkoutInput mirrors the checkout form. The card expiry rule is a
// format check only; see validation.RegisterRules.
type checkoutInput struct {
	Email      string `form:"email" binding:"required,email"`
	FirstName  string `form:"first_name" binding:"required"`
	LastName   string `form:"last_name" binding:"required"`
	Address    string `form:"address" binding:"required"`
	City       string `form:"city" binding:"required"`
	State      string `form:"state" binding:"required"`
	PostalCode string `form:"postal_code" binding:"required"`
	Country    string `form:"country" binding:"required"`
	Phone      string `form:"phone" binding:"required"`

	CardNumber string `form:"card_number" binding:"required,min=13"`
	CardExpiry string `form:"card_expiry" binding:"required,cardexpiry"`
	CardCVC    string `form:"card_cvc" binding:"required,min=3"`
}

func (h *CheckoutHandler) store(c *gin.Context) *cart.PersistentStore {
	return h.Mgr.Get(c.Request.Context(), h.CK.EnsureCartID(c))
}

// Get handles GET /checkout. An empty cart shows the empty-cart view
// instead of the form.
func (h *CheckoutHandler) Get(c *gin.Context) {
	st := h.store(c)
	if st.ItemCount() == 0 {
		render.Page(c, http.StatusOK, "checkout_empty.tmpl", nil)
		return
	}

	render.Page(c, http.StatusOK, "checkout.tmpl", gin.H{
		"Form":      view.CheckoutForm{},
		"Errors":    validation.FieldErrors{},
		"Countries": view.ShippingCountries(),
		"Summary":   h.buildSummary(st),
	})
}

// Post handles POST /checkout: validate, charge, clear, confirm.
func (h *CheckoutHandler) Post(c *gin.Context) {
	st := h.store(c)
	if st.ItemCount() == 0 {
		render.Page(c, http.StatusOK, "checkout_empty.tmpl", nil)
		return
	}

	var in checkoutInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderWithErrors(c, st, in, errs, "")
		return
	}

	receipt, err := h.Svc.Submit(c.Request.Context(), st.ID(), st.Store, checkout.SubmitInput{
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Phone:      in.Phone,
		CardNumber: in.CardNumber,
		CardExpiry: in.CardExpiry,
		CardCVC:    in.CardCVC,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrCartEmpty):
			render.Page(c, http.StatusOK, "checkout_empty.tmpl", nil)
		case errors.Is(err, checkout.ErrInFlight):
			render.RedirectWithFlash(c, h.Flash, "/checkout", view.FlashWarning,
				"Your order is already being processed.")
		default:
			h.renderWithErrors(c, st, in, nil, "Checkout failed. Please try again.")
		}
		return
	}

	metrics.OrdersPlacedTotal.Inc()
	render.RedirectWithFlash(c, h.Flash, "/order-confirmation?order="+receipt.OrderID,
		view.FlashSuccess, "Order confirmed. Thank you!")
}

func (h *CheckoutHandler) renderWithErrors(c *gin.Context, st *cart.PersistentStore, in checkoutInput, errs validation.FieldErrors, pageErr string) {
	if errs == nil {
		errs = validation.FieldErrors{}
	}
	render.Page(c, http.StatusBadRequest, "checkout.tmpl", gin.H{
		"Form": view.CheckoutForm{
			Email:      in.Email,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Address:    in.Address,
			City:       in.City,
			State:      in.State,
			PostalCode: in.PostalCode,
			Country:    in.Country,
			Phone:      in.Phone,
			CardNumber: in.CardNumber,
			CardExpiry: in.CardExpiry,
			CardCVC:    in.CardCVC,
		},
		"Errors":    errs,
		"PageError": pageErr,
		"Countries": view.ShippingCountries(),
		"Summary":   h.buildSummary(st),
	})
}

func (h *CheckoutHandler) buildSummary(st *cart.PersistentStore) view.CheckoutSummary {
	snap := st.Snapshot()
	totals := h.Svc.Totals(st.Store)

	return view.CheckoutSummary{
		Lines:         cartLines(snap.Items),
		Count:         snap.ItemCount(),
		SubtotalCents: totals.SubtotalCents,
		ShippingCents: totals.ShippingCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
		Subtotal:      view.MoneyFromCents(totals.SubtotalCents),
		Shipping:      view.FreeOrMoney(totals.ShippingCents),
		Tax:           view.MoneyFromCents(totals.TaxCents),
		Total:         view.MoneyFromCents(totals.TotalCents),
	}
}
