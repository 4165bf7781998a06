package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/minseoh/task-tracker/config"
	"github.com/minseoh/task-tracker/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, email, password_hash, email_verified)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, username, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s username=%s password=%s\n", id, email, username, password)

	titles := []string{"Buy groceries", "Write weekly report", "Review pull requests"}
	for _, title := range titles {
		if _, err := db.Exec(`
			INSERT INTO tasks (user_id, title)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE user_id = $1 AND title = $2)
		`, id, title); err != nil {
			log.Fatalf("failed to seed task %q: %v", title, err)
		}
	}
	fmt.Printf("seeded %d tasks for %s\n", len(titles), username)
}
