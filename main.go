package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"medstock/m/internal/api"
	"medstock/m/internal/config"
	"medstock/m/internal/inventory"
	"medstock/m/internal/seed"
	"medstock/m/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gw, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open local storage: %v", err)
	}
	defer gw.Close()

	store := inventory.New(gw)
	store.Load(context.Background())
	seed.LoadInventory(store, cfg.SeedCSV)

	handler := api.New(store)
	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: handler.Router()}

	go func() {
		log.Printf("MedStock inventory server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	// Flush any snapshot still in the write-behind queue.
	store.Close()
}
