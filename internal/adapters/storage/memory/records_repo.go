package memory

import (
	"context"
	"sync"

	"pet-care-tracker/internal/domain/records"
)

type table struct {
	nextID int64
	rows   []records.Record // orden de inserción
}

type recordsRepo struct {
	mu     sync.RWMutex
	tables map[string]*table
}

func NewRecordsRepo() records.Repository {
	return &recordsRepo{
		tables: make(map[string]*table),
	}
}

func (r *recordsRepo) List(ctx context.Context, s records.Schema) ([]records.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[s.Table]
	if !ok {
		return []records.Record{}, nil
	}

	out := make([]records.Record, 0, len(t.rows))
	for _, rec := range t.rows {
		out = append(out, clone(rec))
	}
	return out, nil
}

func (r *recordsRepo) Create(ctx context.Context, s records.Schema, rec records.Record) (records.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[s.Table]
	if !ok {
		t = &table{}
		r.tables[s.Table] = t
	}

	// Los ids no se reutilizan aunque se borre el último.
	t.nextID++
	rec.ID = t.nextID
	rec = clone(rec)
	t.rows = append(t.rows, rec)

	return clone(rec), nil
}

func (r *recordsRepo) Delete(ctx context.Context, s records.Schema, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[s.Table]
	if !ok {
		return false, nil
	}
	for i, rec := range t.rows {
		if rec.ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// clone evita que el caller mute el mapa guardado.
func clone(rec records.Record) records.Record {
	values := make(map[string]any, len(rec.Values))
	for k, v := range rec.Values {
		values[k] = v
	}
	rec.Values = values
	return rec
}
