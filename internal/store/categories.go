package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/garderoba/internal/model"
)

// ListCategories returns all categories for an owner, sorted by name.
func ListCategories(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Category, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_id, name, created_at
		 FROM categories WHERE owner_id = ? ORDER BY name`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// CreateCategory creates a category for an owner, or returns the existing row
// when (owner_id, name) already exists. The returned bool reports whether a new
// row was created. INSERT OR IGNORE + re-SELECT keeps concurrent creates from
// ever producing two rows.
func CreateCategory(ctx context.Context, db *sql.DB, ownerID int64, name string) (*model.Category, bool, error) {
	result, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (owner_id, name) VALUES (?, ?)`,
		ownerID, name,
	)
	if err != nil {
		return nil, false, fmt.Errorf("creating category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("checking category insert: %w", err)
	}

	c := &model.Category{}
	err = db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at
		 FROM categories WHERE owner_id = ? AND name = ?`, ownerID, name,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("getting category: %w", err)
	}

	return c, affected > 0, nil
}

// DeleteCategory removes a category by (owner_id, name). Deleting a name that
// does not exist is not an error. Items referencing the name keep their label.
func DeleteCategory(ctx context.Context, db *sql.DB, ownerID int64, name string) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM categories WHERE owner_id = ? AND name = ?`, ownerID, name,
	)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}
	return nil
}

// CountCategories returns the total number of categories across all owners.
func CountCategories(ctx context.Context, db *sql.DB) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting categories: %w", err)
	}
	return n, nil
}
