// README: Entry point; loads config, wires adapters and planner, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripplanner/internal/ai"
	"tripplanner/internal/config"
	httptransport "tripplanner/internal/http"
	"tripplanner/internal/infra"
	"tripplanner/internal/maps"
	"tripplanner/internal/modules/aiusage"
	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	cache := infra.NewCache(redisClient, cfg.Cache.TTL)

	geo, err := maps.NewGeoService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("maps geocoder init")
	}
	places, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("maps places init")
	}
	wx, err := weather.New(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.RPS)
	if err != nil {
		logger.Fatal().Err(err).Msg("weather client init")
	}
	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("gemini init")
	}
	defer gemini.Close()

	planner := itinerary.NewService(itinerary.Deps{
		Geocoder: geo,
		Places:   places,
		Weather:  wx,
		Text:     gemini,
		Cache:    cache,
		Logger:   logger,
	})

	quota := aiusage.NewService(aiusage.NewStore(redisClient))

	router := httptransport.NewRouter(planner, quota, logger)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	logger.Info().Str("addr", cfg.HTTP.Addr).Msg("API listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
