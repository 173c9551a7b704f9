package memory

import (
	"context"
	"fmt"
	"sync"

	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/platform/apperr"
)

type usersRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]users.User
	byEmail map[string]int64
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID:    make(map[int64]users.User),
		byEmail: make(map[string]int64),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return users.User{}, fmt.Errorf("%w: user %s", apperr.ErrAlreadyExists, u.Email)
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.ErrNotFound
	}
	return u, nil
}
