package store

import (
	"context"
	"testing"

	"github.com/erazemk/garderoba/internal/db"
	"github.com/erazemk/garderoba/internal/model"
)

func TestCreateAndListItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := testUser(t, database, "ana")

	first, err := CreateItem(ctx, database, owner, "Blue Tee", "Shirts", model.StatusWashed, nil, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if first.Status != model.StatusWashed {
		t.Errorf("expected status %q, got %q", model.StatusWashed, first.Status)
	}

	second, err := CreateItem(ctx, database, owner, "Jeans", "Trousers", model.StatusUnwashed, nil, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if second.Status != model.StatusUnwashed {
		t.Errorf("expected status %q, got %q", model.StatusUnwashed, second.Status)
	}

	items, err := ListItems(ctx, database, owner)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	// Creation order is preserved.
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("expected creation order [%d %d], got [%d %d]",
			first.ID, second.ID, items[0].ID, items[1].ID)
	}
}

func TestItemOwnerScoping(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ana := testUser(t, database, "ana")
	bob := testUser(t, database, "bob")

	item, err := CreateItem(ctx, database, ana, "Blue Tee", "Shirts", model.StatusWashed, nil, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	// Bob cannot see ana's item even with its id.
	got, err := GetItem(ctx, database, bob, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got != nil {
		t.Error("expected nil for another owner's item")
	}

	// Bob cannot update it.
	updated, err := UpdateItem(ctx, database, bob, item.ID, "Stolen", "Shirts", model.StatusWashed, nil, nil)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated != nil {
		t.Error("expected nil update for another owner's item")
	}

	// Bob cannot delete it.
	deleted, err := DeleteItem(ctx, database, bob, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if deleted != nil {
		t.Error("expected nil delete for another owner's item")
	}

	// The item is untouched.
	got, _ = GetItem(ctx, database, ana, item.ID)
	if got == nil || got.Name != "Blue Tee" {
		t.Errorf("expected ana's item unchanged, got %+v", got)
	}

	// Bob's list is empty.
	items, _ := ListItems(ctx, database, bob)
	if len(items) != 0 {
		t.Errorf("expected no items for bob, got %d", len(items))
	}
}

func TestUpdateItemReplacesAllFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := testUser(t, database, "ana")

	url := "http://localhost:8080/uploads/x.jpg"
	handle := "x.jpg"
	item, err := CreateItem(ctx, database, owner, "Blue Tee", "Shirts", model.StatusWashed, &url, &handle)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	// Update without image fields clears them (full replace, not merge).
	updated, err := UpdateItem(ctx, database, owner, item.ID, "Red Tee", "Shirts", model.StatusUnwashed, nil, nil)
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated item")
	}
	if updated.Name != "Red Tee" || updated.Status != model.StatusUnwashed {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.ImageURL != nil || updated.ImageAssetID != nil {
		t.Error("expected image fields cleared by full replace")
	}
}

func TestDeleteItemReturnsRow(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	owner := testUser(t, database, "ana")

	handle := "1700000000-abc.jpg"
	item, err := CreateItem(ctx, database, owner, "Blue Tee", "Shirts", model.StatusWashed, nil, &handle)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	deleted, err := DeleteItem(ctx, database, owner, item.ID)
	if err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if deleted == nil {
		t.Fatal("expected deleted item")
	}
	if deleted.ImageAssetID == nil || *deleted.ImageAssetID != handle {
		t.Errorf("expected asset handle %q on deleted row", handle)
	}

	got, _ := GetItem(ctx, database, owner, item.ID)
	if got != nil {
		t.Error("expected item gone after delete")
	}
}
