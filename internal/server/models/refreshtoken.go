package models

import "time"

// RefreshToken is a stored refresh token row. Token holds the SHA-256 digest
// of the value handed to the client, not the value itself.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
