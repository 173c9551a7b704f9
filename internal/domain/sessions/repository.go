package sessions

import (
	"context"
	"time"
)

// Repository guarda sesiones por hash de id.
// Get => apperr.ErrNotFound si no existe. Delete es idempotente.
type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, idHash string) (Session, error)
	Delete(ctx context.Context, idHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
