package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"ourstory/config"
	"ourstory/pkg/helpers"
)

// Seeds a demo profile with a couple of entries so the frontend has
// something to show on a fresh database.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	name := "Alice"
	password := "sunflower"
	hash, err := helpers.HashPassword(password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO profiles (id, name, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, uuid.NewString(), name, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s name=%s password=%s\n", id, name, password)

	entries := []struct {
		title, date, body string
	}{
		{"The day we met", "2024-02-14", "Coffee went cold while we talked."},
		{"First trip together", "2024-06-02", "Missed the train, found a better one."},
	}
	for _, e := range entries {
		if _, err := db.Exec(`
			INSERT INTO diary_entries (id, profile_id, title, date, body)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, uuid.NewString(), id, e.title, e.date, e.body); err != nil {
			log.Fatalf("failed to seed entry %q: %v", e.title, err)
		}
	}
	fmt.Printf("seeded %d diary entries\n", len(entries))
}
