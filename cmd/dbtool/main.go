package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"itinerary-service/internal/adapters/catalog"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/config"
	"itinerary-service/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool creates the attraction catalog schema and seeds it from the CSV catalog.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dialect, err := repositories.ParseDialect(config.Get("CATALOG_DIALECT", "sqlite"))
	if err != nil {
		log.Fatal(err)
	}

	conn, err := open(dialect)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	csvPath := config.Get("CATALOG_CSV_PATH", "data/attractions.csv")
	if err := initAndSeed(conn, dialect, csvPath); err != nil {
		log.Fatal(err)
	}
}

func open(dialect repositories.Dialect) (*sql.DB, error) {
	if dialect == repositories.Postgres {
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required")
		}
		return db.OpenPostgres(databaseURL)
	}
	return db.OpenSQLite(config.Get("SQLITE_PATH", "data/catalog.db"))
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, csvPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn, dialect); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	attractions, err := catalog.NewCSVCatalog(csvPath).ListAttractions(context.Background())
	if err != nil {
		log.Fatalf("reading catalog failed: %v", err)
	}

	log.Printf("Seeding database with %d attractions...", len(attractions))
	if err := repositories.SeedAttractions(conn, dialect, attractions); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
