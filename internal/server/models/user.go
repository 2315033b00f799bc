package models

import "time"

// User is a registered account. PasswordHash is an argon2id PHC string and
// never leaves the server.
type User struct {
	ID           string
	UserName     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}
