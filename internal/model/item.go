package model

import "time"

// Item represents a single piece of clothing owned by a user. The category is a
// free-form label, not a foreign key: deleting a Category leaves items with
// their old label.
type Item struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	ImageURL     *string   `json:"imageUrl"`
	ImageAssetID *string   `json:"imageAssetId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Item statuses.
const (
	StatusWashed   = "Washed"
	StatusUnwashed = "Unwashed"
	StatusLost     = "Lost/Unused"
)

// ValidStatus reports whether s is one of the known item statuses.
func ValidStatus(s string) bool {
	return s == StatusWashed || s == StatusUnwashed || s == StatusLost
}
