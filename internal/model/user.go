package model

import "time"

// User represents an account. Usernames are stored normalized (trimmed,
// lowercased) so lookups are case-insensitive.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6
