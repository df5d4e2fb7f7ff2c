package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// migrationsDir holds the numbered .sql files; they are applied in
// lexical order, so the numeric prefix is the schema history.
const migrationsDir = "./database/migrations"

func main() {
	godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer conn.Close(ctx)

	files, err := migrationFiles(migrationsDir)
	if err != nil {
		log.Fatal("Failed to read migrations directory:", err)
	}
	if len(files) == 0 {
		log.Fatalf("No .sql migrations found in %s", migrationsDir)
	}

	for _, name := range files {
		ddl, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatalf("Failed to read migration %s: %v", name, err)
		}

		if _, err := conn.Exec(ctx, string(ddl)); err != nil {
			log.Fatalf("Migration %s failed: %v", name, err)
		}

		log.Printf("Applied migration: %s", name)
	}

	log.Printf("Schema up to date (%d migrations applied)", len(files))
}

// migrationFiles lists the .sql files in dir, sorted by name.
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".sql" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
