package client

import (
	"file-shop-demo/internal/model"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitSessionDB opens the in-memory sqlite database backing the purchase
// ledger. The shared cache keeps every connection on the same database, and
// the data lives exactly as long as the process session.
func InitSessionDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to open session database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	// sqlite allows a single writer; one open connection avoids lock errors
	// on the shared in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.PurchaseRecord{}); err != nil {
		log.Fatal(err)
	}

	return db
}
