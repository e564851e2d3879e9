package store

import (
	"context"
	"testing"

	"bazaar/internal/db"
)

func TestListItemNames(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items, err := ListItemNames(ctx, database, 0, 10)
	if err != nil {
		t.Fatalf("ListItemNames: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	want := []string{"Foo", "Bar", "Baz"}
	for i, w := range want {
		if items[i].ItemName != w {
			t.Errorf("item %d: expected %q, got %q", i, w, items[i].ItemName)
		}
	}
}

func TestListItemNamesSlicing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items, err := ListItemNames(ctx, database, 1, 1)
	if err != nil {
		t.Fatalf("ListItemNames: %v", err)
	}
	if len(items) != 1 || items[0].ItemName != "Bar" {
		t.Errorf("expected exactly [Bar], got %v", items)
	}
}

func TestListItemNamesPastEnd(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items, err := ListItemNames(ctx, database, 10, 10)
	if err != nil {
		t.Fatalf("ListItemNames: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty list, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected 0 items, got %d", len(items))
	}
}
