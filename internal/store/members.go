package store

import (
	"context"
	"database/sql"
	"fmt"

	"bazaar/internal/model"
)

// GetMemberByName returns a member by membername, or nil when absent.
// Both login and token validation resolve through this lookup.
func GetMemberByName(ctx context.Context, db *sql.DB, membername string) (*model.MemberInDB, error) {
	m := &model.MemberInDB{}
	var email, fullName sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT membername, email, full_name, hashed_password, disabled
		 FROM members WHERE membername = ?`, membername,
	).Scan(&m.Membername, &email, &fullName, &m.HashedPassword, &m.Disabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting member: %w", err)
	}
	m.Email = email.String
	m.FullName = fullName.String
	return m, nil
}
