package store

import (
	"context"
	"testing"

	"bazaar/internal/db"
)

func TestGetMemberByName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	member, err := GetMemberByName(ctx, database, "johndoe")
	if err != nil {
		t.Fatalf("GetMemberByName: %v", err)
	}
	if member == nil {
		t.Fatal("expected member, got nil")
	}
	if member.Membername != "johndoe" {
		t.Errorf("expected 'johndoe', got %q", member.Membername)
	}
	if member.FullName != "John Doe" {
		t.Errorf("expected 'John Doe', got %q", member.FullName)
	}
	if member.HashedPassword != "fakehashedsecret1" {
		t.Errorf("expected seeded hash, got %q", member.HashedPassword)
	}
	if member.Disabled {
		t.Error("expected johndoe to be active")
	}
}

func TestGetMemberByNameDisabled(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	member, err := GetMemberByName(ctx, database, "alice")
	if err != nil {
		t.Fatalf("GetMemberByName: %v", err)
	}
	if member == nil {
		t.Fatal("expected member, got nil")
	}
	if !member.Disabled {
		t.Error("expected alice to be disabled")
	}
}

func TestGetMemberByNameMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	member, err := GetMemberByName(ctx, database, "bob")
	if err != nil {
		t.Fatalf("GetMemberByName: %v", err)
	}
	if member != nil {
		t.Error("expected nil for missing member")
	}
}
