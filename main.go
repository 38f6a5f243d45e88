package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/raushankrgupta/stylefinder/aggregator"
	"github.com/raushankrgupta/stylefinder/api"
	"github.com/raushankrgupta/stylefinder/cache"
	"github.com/raushankrgupta/stylefinder/config"
	"github.com/raushankrgupta/stylefinder/enrich"
	"github.com/raushankrgupta/stylefinder/events"
	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/imageresolver"
	"github.com/raushankrgupta/stylefinder/sources"
	"github.com/raushankrgupta/stylefinder/stylist"
	"github.com/raushankrgupta/stylefinder/utils"
)

func main() {
	config.LoadConfig()

	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	fetcher := fetch.NewFetcher()
	agg := aggregator.New(sources.Registered(fetcher)...)
	resolver := imageresolver.New(fetcher, sources.ImageSource())
	orchestrator := enrich.New(agg, resolver)

	styler, err := stylist.New(context.Background(), config.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize stylist: %v", err)
	}
	if !styler.Available() {
		fmt.Println("[Main] GEMINI_API_KEY not set, /style endpoint will be unavailable")
	}

	var lookCache cache.LookCache
	if config.RedisAddr != "" {
		lookCache = cache.NewRedisCache(config.RedisAddr, cache.DefaultTTL)
		fmt.Println("[Main] Using Redis look cache")
	} else {
		lookCache = cache.NewMemoryCache(cache.DefaultTTL, 0)
		fmt.Println("[Main] Using in-memory look cache")
	}

	clicks := events.NewClickProducer(config.KafkaBroker)
	defer clicks.Close()

	handlers := api.NewHandlers(styler, orchestrator, agg, aggregator.Ranker{}, lookCache, clicks)

	router := mux.NewRouter()
	router.Use(utils.CORSMiddleware, utils.LatencyMiddleware)
	handlers.RegisterRoutes(router)

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	fmt.Printf("Usage: curl -X POST \"http://localhost:%s/style\" -d '{\"query\":\"summer office party\"}'\n", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
