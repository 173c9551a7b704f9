package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/platform/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertUserPattern = `INSERT INTO users \(email, password_hash, created_at, updated_at\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+RETURNING id`

func TestUsersRepo_Create(t *testing.T) {
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	u := users.User{Email: "a@x.com", PasswordHash: "hash", CreatedAt: at, UpdatedAt: at}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "ok",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertUserPattern).
					WithArgs(u.Email, u.PasswordHash, at, at).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name: "email duplicado en postgres",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertUserPattern).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: apperr.ErrAlreadyExists,
		},
		{
			name: "email duplicado en sqlite",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertUserPattern).WillReturnError(errors.New("UNIQUE constraint failed: users.email"))
			},
			wantErr: apperr.ErrAlreadyExists,
		},
		{
			name: "db caída",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertUserPattern).WillReturnError(errors.New("connection refused"))
			},
			wantErr: apperr.ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			got, err := NewUsersRepo(db).Create(context.Background(), u)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, u.Email, got.Email)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUsersRepo_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUsersRepo(db)
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`)

	mock.ExpectQuery(query).WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(int64(5), "a@x.com", "hash", at, at))
	mock.ExpectQuery(query).WithArgs("b@x.com").WillReturnError(sql.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, "hash", u.PasswordHash)

	_, err = repo.GetByEmail(context.Background(), "b@x.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetByID_StorageError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE id = $1`)).WithArgs(int64(9)).
		WillReturnError(errors.New("broken pipe"))

	_, err := NewUsersRepo(db).GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
