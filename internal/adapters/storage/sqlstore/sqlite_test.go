package sqlstore

import (
	"context"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"
	"time"

	"pet-care-tracker/internal/domain/records"
	"pet-care-tracker/internal/domain/sessions"
	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/platform/apperr"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB migra un archivo sqlite nuevo con el motor real y lo abre.
func newSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "petcare.db")

	require.NoError(t, Migrate(nil, DriverSQLite, dsn))
	// segunda corrida: ErrNoChange no es error
	require.NoError(t, Migrate(nil, DriverSQLite, dsn))

	db, err := Open(DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func decodeBody(t *testing.T, s records.Schema, raw string) map[string]any {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	values, err := s.Decode(m)
	require.NoError(t, err)
	return values
}

func TestSQLite_PetProfileRoundTrip(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewRecordsRepo(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 123456789, time.UTC)

	values := decodeBody(t, records.PetProfile,
		`{"pet_name":"Milo","breed":"mixed","weight":12.345,"age":9223372036854775807}`)

	rec, err := repo.Create(ctx, records.PetProfile, records.Record{Values: values, CreatedAt: at, UpdatedAt: at})
	require.NoError(t, err)
	assert.Positive(t, rec.ID)

	items, err := repo.List(ctx, records.PetProfile)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Milo", got.Values["pet_name"])
	assert.Equal(t, 12.345, got.Values["weight"])
	assert.Equal(t, int64(math.MaxInt64), got.Values["age"])
	assert.True(t, at.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, at)
	assert.True(t, at.Equal(got.UpdatedAt), "updated_at %v != %v", got.UpdatedAt, at)
}

func TestSQLite_VaccinationDates(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewRecordsRepo(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	values := decodeBody(t, records.Vaccination,
		`{"vaccineName":"rabies","vaccineDate":"2024-03-01","expires":null}`)

	_, err := repo.Create(ctx, records.Vaccination, records.Record{Values: values, CreatedAt: at, UpdatedAt: at})
	require.NoError(t, err)

	items, err := repo.List(ctx, records.Vaccination)
	require.NoError(t, err)
	require.Len(t, items, 1)

	day, ok := items[0].Values["vaccineDate"].(records.Date)
	require.True(t, ok, "vaccineDate is %T", items[0].Values["vaccineDate"])
	assert.Equal(t, "2024-03-01", day.String())
	assert.Nil(t, items[0].Values["expires"])
}

func TestSQLite_IDsAreNeverReused(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewRecordsRepo(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	create := func() int64 {
		rec, err := repo.Create(ctx, records.Diet, records.Record{
			Values:    map[string]any{"mealType": "breakfast", "notes": nil},
			CreatedAt: at,
			UpdatedAt: at,
		})
		require.NoError(t, err)
		return rec.ID
	}

	first := create()
	second := create()
	require.Greater(t, second, first)

	ok, err := repo.Delete(ctx, records.Diet, second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Delete(ctx, records.Diet, second)
	require.NoError(t, err)
	assert.False(t, ok)

	third := create()
	assert.Greater(t, third, second)
}

func TestSQLite_Users(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUsersRepo(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	u, err := repo.Create(ctx, users.User{Email: "a@x.com", PasswordHash: "h", CreatedAt: at, UpdatedAt: at})
	require.NoError(t, err)
	assert.Positive(t, u.ID)

	_, err = repo.Create(ctx, users.User{Email: "a@x.com", PasswordHash: "h2", CreatedAt: at, UpdatedAt: at})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, at.Equal(got.CreatedAt))

	_, err = repo.GetByID(ctx, u.ID+100)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSQLite_SessionsPurge(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewSessionsRepo(db)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	// zona distinta de UTC: la comparación en sqlite es textual
	art := time.FixedZone("ART", -3*3600)

	require.NoError(t, repo.Create(ctx, sessions.Session{
		IDHash: "old", UserID: 1, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour).In(art),
	}))
	require.NoError(t, repo.Create(ctx, sessions.Session{
		IDHash: "live", UserID: 1, CreatedAt: now, ExpiresAt: now.Add(time.Hour).In(art),
	}))

	live, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	assert.True(t, now.Add(time.Hour).Equal(live.ExpiresAt))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.Get(ctx, "live")
	assert.NoError(t, err)
}
