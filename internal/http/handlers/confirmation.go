package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/http/render"
)

type ConfirmationHandler struct{}

func NewConfirmationHandler() *ConfirmationHandler {
	return &ConfirmationHandler{}
}

// Show handles GET /order-confirmation. Without an order reference the
// visitor is sent back to the storefront.
func (h *ConfirmationHandler) Show(c *gin.Context) {
	orderID := strings.TrimSpace(c.Query("order"))
	if orderID == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	render.Page(c, http.StatusOK, "confirmation.tmpl", gin.H{
		"OrderID": orderID,
	})
}
