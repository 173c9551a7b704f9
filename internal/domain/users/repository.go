package users

import "context"

// Repository persiste usuarios.
// Create asigna el ID; email duplicado => apperr.ErrAlreadyExists.
// GetByEmail/GetByID => apperr.ErrNotFound si no existe.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}
