package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pick-route-service/internal/adapters/repositories"
	"pick-route-service/internal/config"
	"pick-route-service/internal/platform/db"
)

// dbtool initializes the layout schema and seeds it from the JSON
// layout file. Run it once per environment before starting the server
// with DATABASE_URL set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	layoutPath := config.Get("LAYOUT_PATH", "data/layout.json")
	log.Printf("Seeding layout from %s...", layoutPath)
	if err := repositories.SeedFromJSON(conn, layoutPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
