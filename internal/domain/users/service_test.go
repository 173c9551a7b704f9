package users

import (
	"context"
	"errors"
	"testing"

	"pet-care-tracker/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byEmail map[string]User
	nextID  int64
	failGet error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]User{}}
}

func (f *fakeRepo) Create(_ context.Context, u User) (User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return User{}, apperr.ErrAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (User, error) {
	if f.failGet != nil {
		return User{}, f.failGet
	}
	u, ok := f.byEmail[email]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, apperr.ErrNotFound
}

func newTestService(repo Repository) *Service {
	s := NewService(repo, nil)
	s.cost = bcrypt.MinCost
	return s
}

func TestCreateUser_ThenVerify(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	u, err := svc.CreateUser(ctx, "  A@X.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))

	got, err := svc.Verify(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestCreateUser_Validation(t *testing.T) {
	svc := newTestService(newFakeRepo())

	tests := []struct {
		name, email, password string
	}{
		{"empty email", "", "pw"},
		{"no at", "ax.com", "pw"},
		{"empty password", "a@x.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	_, err := svc.CreateUser(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "A@x.com", "other")
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
}

func TestVerify_UnknownAndWrongPasswordLookTheSame(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeRepo())

	_, err := svc.CreateUser(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	_, errWrong := svc.Verify(ctx, "a@x.com", "nope")
	_, errUnknown := svc.Verify(ctx, "b@x.com", "pw")

	assert.ErrorIs(t, errWrong, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, apperr.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestVerify_StorageErrorIsNotInvalidCredentials(t *testing.T) {
	repo := newFakeRepo()
	repo.failGet = errors.Join(apperr.ErrStorageUnavailable, errors.New("db down"))
	svc := newTestService(repo)

	_, err := svc.Verify(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, apperr.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, apperr.ErrInvalidCredentials)
}
