package main

import (
	"context"
	"file-shop-demo/internal/client"
	"file-shop-demo/internal/config"
	"file-shop-demo/internal/repository"
	"file-shop-demo/internal/server"
	"file-shop-demo/internal/service"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSessionDB()
	catalogClient := client.NewCatalogClient(&cfg.Catalog)
	processor := client.NewSimulatedProcessor(&cfg.Payment)

	purchaseRepo := repository.NewPurchaseRepository(db)

	catalogService := service.NewCatalogService(catalogClient)
	paymentService := service.NewPaymentService(processor, purchaseRepo, &cfg.Payment, &cfg.Download)
	storeService := service.NewStoreService(catalogService, paymentService, purchaseRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(catalogService, paymentService, storeService, purchaseRepo)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
