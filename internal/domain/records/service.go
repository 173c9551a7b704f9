package records

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/logger"
)

// Store es el Record Store de un recurso: list / create / delete.
type Store struct {
	schema Schema
	repo   Repository
	now    func() time.Time
	log    logger.Logger
}

func NewStore(schema Schema, repo Repository, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		schema: schema,
		repo:   repo,
		now:    time.Now,
		log:    log.With(map[string]any{"resource": schema.Resource}),
	}
}

// NewStores instancia un Store por schema sobre el mismo repo.
func NewStores(repo Repository, log logger.Logger, schemas ...Schema) []*Store {
	out := make([]*Store, 0, len(schemas))
	for _, s := range schemas {
		out = append(out, NewStore(s, repo, log))
	}
	return out
}

func (s *Store) Schema() Schema {
	return s.schema
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	items, err := s.repo.List(ctx, s.schema)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

// Create valida fields contra el schema; si falla no se escribe nada.
func (s *Store) Create(ctx context.Context, fields map[string]json.RawMessage) (Record, error) {
	values, err := s.schema.Decode(fields)
	if err != nil {
		return Record{}, err
	}

	now := s.now().UTC().Truncate(time.Second)
	rec, err := s.repo.Create(ctx, s.schema, Record{
		Values:    values,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Record{}, err
	}

	s.log.Info("record created", map[string]any{"id": rec.ID})
	return rec, nil
}

// Delete borra por id. Un id inexistente es siempre ErrNotFound,
// también al repetir un delete ya aplicado.
func (s *Store) Delete(ctx context.Context, id int64) (DeleteResult, error) {
	if id <= 0 {
		return DeleteResult{}, fmt.Errorf("%w: %s %d", apperr.ErrNotFound, s.schema.Entity, id)
	}

	ok, err := s.repo.Delete(ctx, s.schema, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if !ok {
		return DeleteResult{}, fmt.Errorf("%w: %s %d", apperr.ErrNotFound, s.schema.Entity, id)
	}

	s.log.Info("record deleted", map[string]any{"id": id})
	return DeleteResult{ID: id, Deleted: 1}, nil
}
