package records

import "context"

// Repository es el storage compartido por todos los recursos; el schema
// indica tabla y columnas.
// - List: orden de inserción (id asc).
// - Create: asigna ID (nunca reutilizado) y devuelve el record guardado.
// - Delete: false si el id no existe.
type Repository interface {
	List(ctx context.Context, s Schema) ([]Record, error)
	Create(ctx context.Context, s Schema, r Record) (Record, error)
	Delete(ctx context.Context, s Schema, id int64) (bool, error)
}
