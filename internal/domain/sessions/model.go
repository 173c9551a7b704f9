package sessions

import (
	"time"

	"pet-care-tracker/internal/domain/users"
)

// Session es el estado server-side. Se guarda el hash del id, nunca el id.
type Session struct {
	IDHash    string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Issued es lo que devuelve un login exitoso.
type Issued struct {
	Token     string
	User      users.User
	ExpiresAt time.Time
}
