package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dealflow/apiserver/internal/store"
	"github.com/dealflow/apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users     map[string]types.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]types.User{}}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	user, ok := f.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	if f.createErr != nil {
		return types.User{}, f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return user, nil
}

func aliceParams() RegisterParams {
	return RegisterParams{
		Username: "alice",
		Password: "pw123",
		Email:    "a@x.com",
		Name:     "Alice",
		UserType: "investor",
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	created, err := svc.Register(context.Background(), aliceParams())
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "investor", created.UserType)

	user, err := svc.Authenticate(context.Background(), "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), aliceParams())
	require.NoError(t, err)

	stored := repo.users["alice"]
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "expected bcrypt hash, got %q", stored.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), aliceParams())
	require.NoError(t, err)

	params := aliceParams()
	params.Password = "other"
	_, err = svc.Register(context.Background(), params)
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	assert.Len(t, repo.users, 1)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), aliceParams())
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(context.Background(), "alice", "wrong")
	_, unknownUser := svc.Authenticate(context.Background(), "nobody", "pw123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	accounts := []BootstrapAccount{
		{Username: "muser", Password: "muser", Email: "owner@example.com", Name: "Mock Company Owner", UserType: "company"},
		{Username: "mpe", Password: "mpe", Email: "investor@example.com", Name: "Mock Private Equity", UserType: "investor"},
	}

	require.NoError(t, svc.Seed(context.Background(), accounts))
	require.NoError(t, svc.Seed(context.Background(), accounts))

	assert.Len(t, repo.users, 2)

	user, err := svc.Authenticate(context.Background(), "muser", "muser")
	require.NoError(t, err)
	assert.Equal(t, "company", user.UserType)
}
