package main

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/movshovich/scarves-store/internal/cart"
)

func main() {
	dbPath := os.Getenv("CART_DB_PATH")
	if dbPath == "" {
		dbPath = "carts.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := cart.NewRepo(db).Migrate(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("✓ cart_records table created successfully")
}
