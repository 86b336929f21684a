package model

import "time"

// Category is a user-owned grouping label. (OwnerID, Name) is unique per owner;
// different owners may use the same name.
type Category struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
