package users

import "time"

// User es la credencial registrada. El hash nunca se serializa.
type User struct {
	ID           int64
	Email        string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
