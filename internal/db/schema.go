package db

import (
	"database/sql"
	"fmt"

	"bazaar/internal/auth"
)

// schema is the full database schema. Both tables are written once at
// startup and read-only afterwards.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    membername      TEXT PRIMARY KEY,
    email           TEXT,
    full_name       TEXT,
    hashed_password TEXT NOT NULL,
    disabled        INTEGER NOT NULL DEFAULT 0
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Seed populates the fixed catalogue and member directory. It is idempotent
// and must run before the first request; nothing writes these tables later.
func Seed(db *sql.DB) error {
	items := []string{"Foo", "Bar", "Baz"}
	for i, name := range items {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO items (id, name) VALUES (?, ?)`,
			i+1, name,
		)
		if err != nil {
			return fmt.Errorf("seeding item %q: %w", name, err)
		}
	}

	members := []struct {
		membername string
		email      string
		fullName   string
		password   string
		disabled   bool
	}{
		{"johndoe", "johndoe@example.com", "John Doe", "secret1", false},
		{"alice", "alice@example.com", "Alice Wonderson", "secret2", true},
	}
	for _, m := range members {
		_, err := db.Exec(
			`INSERT OR IGNORE INTO members (membername, email, full_name, hashed_password, disabled)
			 VALUES (?, ?, ?, ?, ?)`,
			m.membername, m.email, m.fullName, auth.HashPassword(m.password), m.disabled,
		)
		if err != nil {
			return fmt.Errorf("seeding member %q: %w", m.membername, err)
		}
	}

	return nil
}
