package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fajarp/task-tracker-api/config"
	"github.com/fajarp/task-tracker-api/internal/domain/entity"
	"github.com/fajarp/task-tracker-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoUser1"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	userID := helpers.RandomID(helpers.IDLength)
	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, username, password_hash, name, birthdate, nationality)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, userID, username, hash, "Demo", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "Australian").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	now := helpers.FormatDisplay(time.Now())
	due := helpers.FormatDisplay(time.Now().AddDate(0, 0, 7))
	for i, t := range []struct {
		name  string
		dueAt string
	}{
		{"Write weekly report", due},
		{"Clean up backlog", entity.DueAtNone},
	} {
		if _, err := db.Exec(`
			INSERT INTO tasks (id, name, due_at, created_at, completed, user_id)
			VALUES ($1, $2, $3, $4, false, $5)
			ON CONFLICT (id) DO NOTHING
		`, helpers.RandomID(helpers.IDLength), t.name, t.dueAt, now, id); err != nil {
			log.Fatalf("failed to seed task %d: %v", i, err)
		}
	}
	fmt.Println("seeded demo tasks")
}
