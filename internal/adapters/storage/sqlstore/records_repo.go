package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/platform/apperr"

	"github.com/jmoiron/sqlx"
)

// RecordsRepo guarda todos los recursos; cada Schema apunta a su tabla.
// Tablas y columnas salen del catálogo, nunca del request.
type RecordsRepo struct {
	db *sqlx.DB
}

func NewRecordsRepo(db *sqlx.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) List(ctx context.Context, s records.Schema) ([]records.Record, error) {
	query := fmt.Sprintf(
		`SELECT id, %s, created_at, updated_at FROM %s ORDER BY id ASC`,
		strings.Join(s.Columns(), ", "), s.Table,
	)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("list "+s.Table, err)
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows, s)
		if err != nil {
			return nil, storageErr("scan "+s.Table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list "+s.Table, err)
	}
	return out, nil
}

func (r *RecordsRepo) Create(ctx context.Context, s records.Schema, rec records.Record) (records.Record, error) {
	cols := append(s.Columns(), "created_at", "updated_at")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")

	query := r.db.Rebind(fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES (%s) RETURNING id`,
		s.Table, strings.Join(cols, ", "), placeholders,
	))

	args := make([]any, 0, len(cols))
	for _, f := range s.Fields {
		args = append(args, toDBValue(rec.Values[f.Name]))
	}
	args = append(args, rec.CreatedAt, rec.UpdatedAt)

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		if isDataException(err) {
			return records.Record{}, fmt.Errorf("%w: %s: value out of range for column", apperr.ErrValidation, s.Entity)
		}
		return records.Record{}, storageErr("insert "+s.Table, err)
	}
	return rec, nil
}

func (r *RecordsRepo) Delete(ctx context.Context, s records.Schema, id int64) (bool, error) {
	query := r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, s.Table))

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, storageErr("delete "+s.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("delete "+s.Table, err)
	}
	return n > 0, nil
}

func scanRecord(rows *sql.Rows, s records.Schema) (records.Record, error) {
	var rec records.Record

	dest := make([]any, 0, len(s.Fields)+3)
	dest = append(dest, &rec.ID)
	holders := make([]any, len(s.Fields))
	for i, f := range s.Fields {
		holders[i] = holderFor(f.Type)
		dest = append(dest, holders[i])
	}
	dest = append(dest, &rec.CreatedAt, &rec.UpdatedAt)

	if err := rows.Scan(dest...); err != nil {
		return records.Record{}, err
	}

	rec.Values = make(map[string]any, len(s.Fields))
	for i, f := range s.Fields {
		rec.Values[f.Name] = fromHolder(holders[i])
	}
	return rec, nil
}

func holderFor(t records.FieldType) any {
	switch t {
	case records.TypeDecimal:
		return &sql.NullFloat64{}
	case records.TypeInteger:
		return &sql.NullInt64{}
	case records.TypeDate:
		return &sql.NullTime{}
	default:
		return &sql.NullString{}
	}
}

func fromHolder(h any) any {
	switch v := h.(type) {
	case *sql.NullFloat64:
		if v.Valid {
			return v.Float64
		}
	case *sql.NullInt64:
		if v.Valid {
			return v.Int64
		}
	case *sql.NullTime:
		if v.Valid {
			return records.NewDate(v.Time)
		}
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
	}
	return nil
}

// toDBValue: Date viaja como time.Time (DATE en postgres, texto en sqlite).
func toDBValue(v any) any {
	switch x := v.(type) {
	case records.Date:
		return x.Time
	case time.Time:
		return x
	default:
		return v
	}
}
