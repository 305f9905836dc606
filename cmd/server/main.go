package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"transfer-route-service/internal/adapters/cache"
	"transfer-route-service/internal/adapters/geometry"
	"transfer-route-service/internal/adapters/repositories"
	"transfer-route-service/internal/api"
	"transfer-route-service/internal/config"
	"transfer-route-service/internal/platform/db"
	"transfer-route-service/internal/routing"
	"transfer-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, Mapbox) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	if strings.TrimSpace(mapboxToken) == "" {
		log.Fatal("MAPBOX_TOKEN is required")
	}

	port := config.Get("PORT", "8080")

	// Planning constants stay overridable so staging can exercise non-default
	// speeds, capacities and grace periods.
	cfg := routing.Config{
		AverageSpeedKmph: config.GetFloat("AVERAGE_SPEED_KMPH", 40),
		GraceHours:       config.GetFloat("GRACE_HOURS", 2.0),
		TruckCapacity:    config.GetInt("TRUCK_CAPACITY", 100),
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	// Leg geometry is served from a Redis cache when available; without one
	// the provider simply calls the directions API every time.
	var geometryCache *cache.RedisGeometryCache
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()

		ttl := time.Duration(config.GetInt("GEOMETRY_CACHE_TTL_HOURS", 24)) * time.Hour
		geometryCache = cache.NewRedisGeometryCache(client, ttl)
	} else {
		log.Println("REDIS_ADDR not set, geometry caching disabled")
	}

	provider, err := geometry.NewMapboxGeometryProvider(mapboxToken, geometryCache)
	if err != nil {
		log.Fatal(err)
	}

	svc := services.NewRouteService(
		cfg,
		repositories.NewPostgresLocationRepository(pg),
		repositories.NewPostgresTransferRepository(pg),
		provider,
	)

	router := api.NewRouter(svc)

	// Timeouts are tuned for cold-cache geometry fetches (external API latency).
	log.Printf("Server listening addr=:%s speed_kmph=%.0f grace_hours=%.1f truck_capacity=%d",
		port, cfg.AverageSpeedKmph, cfg.GraceHours, cfg.TruckCapacity)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
