package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "loadhaul/internal/config"
	"loadhaul/internal/domain"
	"loadhaul/internal/fuel"
	"loadhaul/internal/geo"
	router "loadhaul/internal/http"
	"loadhaul/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	prices := fuel.PriceResolver{}
	if env.DBDSN != "" {
		if _, err := intconfig.ConnectDB(env.DBDSN); err != nil {
			log.Printf("DB unavailable, using static fuel price table: %v", err)
		} else {
			defer intconfig.CloseDB()
			prices.Overlay = loadPriceOverlay()
		}
	}

	var remote *domain.RemoteEstimateConfig
	if env.FuelAPIURL != "" {
		remote = &domain.RemoteEstimateConfig{
			URL:       env.FuelAPIURL,
			APIKey:    env.FuelAPIKey,
			TimeoutMs: env.FuelAPITimeoutMs,
		}
	}

	r := router.NewRouter(env, router.Deps{
		Geo:    geo.NewResolver(env.GeocoderBaseURL, nil),
		Prices: prices,
		Remote: remote,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("api listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

// loadPriceOverlay pulls current state diesel averages; any failure degrades
// to the static table.
func loadPriceOverlay() map[string]float64 {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo := repositories.StatePriceRepository{DB: intconfig.DB}
	overlay, err := repo.StateAverages(ctx)
	if err != nil {
		log.Printf("loading state fuel prices: %v", err)
		return nil
	}
	log.Printf("loaded %d state fuel price rows", len(overlay))
	return overlay
}
