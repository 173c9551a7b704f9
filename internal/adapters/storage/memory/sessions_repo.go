package memory

import (
	"context"
	"sync"
	"time"

	"pet-care-tracker/internal/domain/sessions"
	"pet-care-tracker/internal/platform/apperr"
)

type sessionsRepo struct {
	mu     sync.RWMutex
	byHash map[string]sessions.Session
}

func NewSessionsRepo() sessions.Repository {
	return &sessionsRepo{
		byHash: make(map[string]sessions.Session),
	}
}

func (r *sessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byHash[s.IDHash] = s
	return nil
}

func (r *sessionsRepo) Get(ctx context.Context, idHash string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byHash[idHash]
	if !ok {
		return sessions.Session{}, apperr.ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, idHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byHash, idHash)
	return nil
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for h, s := range r.byHash {
		if s.Expired(now) {
			delete(r.byHash, h)
			n++
		}
	}
	return n, nil
}
