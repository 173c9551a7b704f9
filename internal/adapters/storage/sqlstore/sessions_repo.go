package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pet-care-tracker/internal/domain/sessions"
	"pet-care-tracker/internal/platform/apperr"

	"github.com/jmoiron/sqlx"
)

// SessionsRepo: sin FK a users; una sesión huérfana resuelve a anónimo.
type SessionsRepo struct {
	db *sqlx.DB
}

func NewSessionsRepo(db *sqlx.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

type sessionRow struct {
	IDHash    string    `db:"id_hash"`
	UserID    int64     `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	query := r.db.Rebind(`
		INSERT INTO sessions (id_hash, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, s.IDHash, s.UserID, dbTime(s.CreatedAt), dbTime(s.ExpiresAt)); err != nil {
		return storageErr("insert sessions", err)
	}
	return nil
}

func (r *SessionsRepo) Get(ctx context.Context, idHash string) (sessions.Session, error) {
	query := r.db.Rebind(`SELECT id_hash, user_id, created_at, expires_at FROM sessions WHERE id_hash = ?`)

	var row sessionRow
	if err := r.db.GetContext(ctx, &row, query, idHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sessions.Session{}, apperr.ErrNotFound
		}
		return sessions.Session{}, storageErr("select sessions", err)
	}
	return sessions.Session{
		IDHash:    row.IDHash,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
	}, nil
}

func (r *SessionsRepo) Delete(ctx context.Context, idHash string) error {
	query := r.db.Rebind(`DELETE FROM sessions WHERE id_hash = ?`)
	if _, err := r.db.ExecContext(ctx, query, idHash); err != nil {
		return storageErr("delete sessions", err)
	}
	return nil
}

func (r *SessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := r.db.Rebind(`DELETE FROM sessions WHERE expires_at <= ?`)
	res, err := r.db.ExecContext(ctx, query, dbTime(now))
	if err != nil {
		return 0, storageErr("purge sessions", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("purge sessions", err)
	}
	return n, nil
}

// dbTime normaliza a UTC y segundos: en sqlite las fechas se comparan como texto.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
