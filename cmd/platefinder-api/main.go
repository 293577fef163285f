// README: Entry point; loads config, wires services and starts the HTTP
// server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"platefinder/internal/ai"
	"platefinder/internal/config"
	"platefinder/internal/geocode"
	httptransport "platefinder/internal/http"
	"platefinder/internal/http/handlers"
	"platefinder/internal/infra"
	"platefinder/internal/logging"
	"platefinder/internal/modules/curated"
	"platefinder/internal/modules/search"
	"platefinder/internal/modules/suggest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// Geocoding is optional: without a key, search degrades to name-based
	// city filtering instead of distance ranking.
	var geocoder search.Geocoder
	if cfg.Geo.GoogleMapsKey != "" {
		gc, err := geocode.NewClient(cfg.Geo.GoogleMapsKey, cfg.Geo.Region, cfg.Search.GeocodeLimit)
		if err != nil {
			logger.Fatal().Err(err).Msg("geocoder init failed")
		}
		geocoder = gc
	} else {
		logger.Warn().Msg("GOOGLE_MAPS_API_KEY not set, distance ranking disabled")
	}

	// The concierge is optional in the same way.
	var provider ai.Provider
	if cfg.AI.GeminiKey != "" {
		gp, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("gemini init failed")
		}
		defer gp.Close()
		provider = gp
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, concierge endpoint disabled")
	}

	searchStore := search.NewStore(dbPool)
	searchSvc := search.NewService(searchStore, geocoder, search.Config{
		RadiusMiles:    cfg.Search.RadiusMiles,
		GeocodeTimeout: cfg.Search.GeocodeTimeout,
	}, logger)

	suggestSvc := suggest.NewService(suggest.NewStore(dbPool))
	curatedSvc := curated.NewService(curated.NewStore(dbPool), redisClient, cfg.Redis.CacheTTL, logger)

	restaurantHandler := handlers.NewRestaurantHandler(searchSvc, suggestSvc, curatedSvc)
	conciergeHandler := handlers.NewConciergeHandler(searchSvc, provider)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(restaurantHandler, conciergeHandler, logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
