package models

import "time"

// User is a stored account. PasswordHash is a bcrypt hash and never leaves
// the service.
type User struct {
	ID           int64
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
