package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/garderoba/internal/model"
)

const itemColumns = `id, owner_id, name, category, status, image_url, image_asset_id, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*model.Item, error) {
	i := &model.Item{}
	err := row.Scan(&i.ID, &i.OwnerID, &i.Name, &i.Category, &i.Status,
		&i.ImageURL, &i.ImageAssetID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// ListItems returns all items for an owner, ordered by creation time.
func ListItems(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = ? ORDER BY created_at, id`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

// CreateItem creates an item for an owner.
func CreateItem(ctx context.Context, db *sql.DB, ownerID int64, name, category, status string, imageURL, imageAssetID *string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (owner_id, name, category, status, image_url, image_asset_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ownerID, name, category, status, imageURL, imageAssetID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, ownerID, id)
}

// GetItem returns an item by (owner_id, id), or nil if absent. A row owned by
// someone else is indistinguishable from a missing row.
func GetItem(ctx context.Context, db *sql.DB, ownerID, id int64) (*model.Item, error) {
	i, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND owner_id = ?`, id, ownerID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return i, nil
}

// UpdateItem replaces the full mutable field set of an item scoped by
// (owner_id, id). Returns the updated item, or nil when no such row exists for
// this owner.
func UpdateItem(ctx context.Context, db *sql.DB, ownerID, id int64, name, category, status string, imageURL, imageAssetID *string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items
		 SET name = ?, category = ?, status = ?, image_url = ?, image_asset_id = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND owner_id = ?`,
		name, category, status, imageURL, imageAssetID, id, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking item update: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetItem(ctx, db, ownerID, id)
}

// DeleteItem removes an item scoped by (owner_id, id) and returns the deleted
// row so the caller can release its image asset. Returns nil when no such row
// exists for this owner.
func DeleteItem(ctx context.Context, db *sql.DB, ownerID, id int64) (*model.Item, error) {
	item, err := GetItem(ctx, db, ownerID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	_, err = db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND owner_id = ?`, id, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}
	return item, nil
}

// CountItems returns the total number of items across all owners.
func CountItems(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}
