package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCount puts the header-badge item count into the request context.
// Browsers without a cart cookie get zero; no cart is created here.
func CartCount(mgr *cart.Manager, ck *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if id, ok := ck.GetCartID(c); ok {
			n = mgr.Get(c.Request.Context(), id).ItemCount()
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
