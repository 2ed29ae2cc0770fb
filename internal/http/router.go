package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/checkout"
	"github.com/movshovich/scarves-store/internal/http/cartcookie"
	"github.com/movshovich/scarves-store/internal/http/flash"
	"github.com/movshovich/scarves-store/internal/http/handlers"
	"github.com/movshovich/scarves-store/internal/http/middleware"
	"github.com/movshovich/scarves-store/internal/http/validation"
	"github.com/movshovich/scarves-store/templates"
)

// RouterCfg carries everything the router needs. Persister and Processor
// are interfaces so tests can swap in in-memory and instant fakes.
type RouterCfg struct {
	Logger  *slog.Logger
	Catalog *catalog.Catalog

	Persister    cart.Persister
	CookieSecret []byte
	SecureCookie bool

	Processor    checkout.Processor
	CheckoutOpts *checkout.Options
}

func NewRouter(cfg RouterCfg) *gin.Engine {
	validation.RegisterRules()

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	proc := cfg.Processor
	if proc == nil {
		proc = &checkout.SimulatedProcessor{Log: log}
	}
	opts := checkout.DefaultOptions()
	if cfg.CheckoutOpts != nil {
		opts = *cfg.CheckoutOpts
	}

	ck := cartcookie.New(cfg.CookieSecret, "aurora_cart", cfg.SecureCookie)
	fl := flash.NewCodec(cfg.CookieSecret, "aurora_flash", cfg.SecureCookie)
	mgr := cart.NewManager(cfg.Persister, log)
	svc := checkout.NewService(proc, opts, log)

	home := handlers.NewHomeHandler(cfg.Catalog)
	products := handlers.NewProductsHandler(cfg.Catalog)
	cartH := handlers.NewCartHandler(cfg.Catalog, mgr, ck, fl, svc)
	checkoutH := handlers.NewCheckoutHandler(mgr, ck, fl, svc)
	confirm := handlers.NewConfirmationHandler()

	r := gin.New()
	r.SetHTMLTemplate(templates.MustParse())

	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.ErrorHandler(log),
		middleware.FlashMiddleware(fl),
		middleware.CartCount(mgr, ck),
		middleware.Metrics(),
	)

	r.GET("/", home.Index)
	r.GET("/products/:slug", products.Show)

	r.GET("/cart", cartH.Page)
	r.POST("/cart/items", cartH.Add)
	r.POST("/cart/items/update", cartH.Update)
	r.POST("/cart/items/remove", cartH.Remove)
	r.POST("/cart/clear", cartH.Clear)
	r.POST("/cart/open", cartH.Open)
	r.POST("/cart/close", cartH.Close)
	r.POST("/cart/toggle", cartH.Toggle)
	r.GET("/api/cart", cartH.Summary)

	r.GET("/checkout", checkoutH.Get)
	r.POST("/checkout", checkoutH.Post)
	r.GET("/order-confirmation", confirm.Show)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
