package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pick-route-service/internal/adapters/cache"
	"pick-route-service/internal/adapters/repositories"
	"pick-route-service/internal/api"
	"pick-route-service/internal/config"
	"pick-route-service/internal/platform/db"
	"pick-route-service/internal/ports"
)

// main is the application composition root.
// It loads the immutable warehouse layout (Postgres when configured,
// JSON file otherwise), wires the optional Redis distance cache behind
// a port and starts the HTTP server. A malformed layout is fatal here,
// before any request is accepted.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	layoutPath := config.Get("LAYOUT_PATH", "data/layout.json")
	layoutName := config.Get("LAYOUT_NAME", "default")
	port := config.Get("PORT", "8080")

	repo, closeDB := layoutRepository(layoutPath, layoutName)
	if closeDB != nil {
		defer closeDB()
	}

	layout, err := repo.LoadLayout(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf(
		"Layout loaded name=%s grid=%dx%d shelves=%d depot=%s",
		layoutName, layout.Grid().Height(), layout.Grid().Width(),
		len(layout.Shelves()), layout.DepotID(),
	)

	router := api.NewRouter(layout, distanceCache())

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// layoutRepository prefers the database when DATABASE_URL is set and
// falls back to the JSON seed file for local runs.
func layoutRepository(layoutPath, layoutName string) (ports.LayoutRepository, func() error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Printf("DATABASE_URL not set, loading layout from file path=%s", layoutPath)
		return repositories.NewFileLayoutRepository(layoutPath), nil
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}

	return repositories.NewPostgresLayoutRepository(conn, layoutName), conn.Close
}

// distanceCache enables cross-request pairwise memoization when
// REDIS_ADDR is set; routing works without it, recomputing distances
// per request.
func distanceCache() ports.DistanceCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unreachable addr=%s err=%v (distance cache disabled)", addr, err)
		return nil
	}

	log.Printf("Distance cache enabled addr=%s", addr)
	return cache.NewRedisDistanceCache(client)
}
