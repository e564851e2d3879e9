package store

import (
	"context"
	"database/sql"
	"fmt"

	"bazaar/internal/model"
)

// ListItemNames returns the catalogue slice [skip, skip+limit) in seed
// order. Offsets past the end yield an empty list, not an error.
func ListItemNames(ctx context.Context, db *sql.DB, skip, limit int) ([]model.ItemEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM items ORDER BY id LIMIT ? OFFSET ?`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []model.ItemEntry{}
	for rows.Next() {
		var entry model.ItemEntry
		if err := rows.Scan(&entry.ItemName); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, entry)
	}
	return items, rows.Err()
}
