package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movshovich/scarves-store/internal/http/flash"
	"github.com/movshovich/scarves-store/internal/http/middleware"
	"github.com/movshovich/scarves-store/pkg/view"
)

// Page renders a template with the shared chrome data (site identity,
// header cart count, pending flash) merged into data.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Site"]; !ok {
		data["Site"] = view.Site()
	}
	data["CartCount"] = middleware.GetCartCount(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.GetFlash(c)
	}
	c.HTML(status, name, data)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
