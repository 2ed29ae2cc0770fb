package main

import (
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/movshovich/scarves-store/internal/cart"
	"github.com/movshovich/scarves-store/internal/catalog"
	"github.com/movshovich/scarves-store/internal/checkout"
	apphttp "github.com/movshovich/scarves-store/internal/http"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		log.Fatal("COOKIE_SECRET environment variable is required")
	}

	dbPath := os.Getenv("CART_DB_PATH")
	if dbPath == "" {
		dbPath = "carts.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open cart database: %v", err)
	}

	repo := cart.NewRepo(db)
	if err := repo.Migrate(); err != nil {
		log.Fatalf("failed to migrate cart database: %v", err)
	}

	var proc checkout.Processor
	sim := &checkout.SimulatedProcessor{Log: logger}
	if v := os.Getenv("PAYMENT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid PAYMENT_DELAY: %v", err)
		}
		sim.Delay = d
	}
	proc = sim

	r := apphttp.NewRouter(apphttp.RouterCfg{
		Logger:       logger,
		Catalog:      catalog.Default(),
		Persister:    repo,
		CookieSecret: []byte(secret),
		SecureCookie: os.Getenv("COOKIE_SECURE") == "true",
		Processor:    proc,
	})

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	_ = r.Run(addr)
}
