package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"transfer-route-service/internal/adapters/repositories"
	"transfer-route-service/internal/config"
	"transfer-route-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/route_data.json")
	if err := initAndSeed(pg, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pg); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Println("Seeding route data...")
	if err := repositories.SeedFromJSON(pg, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
