package user

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenaduna/booking-backend/internal/auth"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	repo := NewFileRepository(path)
	hasher := auth.NewBcryptPasswordHasherWithCost(4) // low cost for tests
	return NewService(repo, hasher)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Maria@Example.com", "s3cretpass", "Maria", "11977776666")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "maria@example.com", u.Email)
	require.Equal(t, "11977776666", u.Phone)
	require.NotEqual(t, "s3cretpass", u.PasswordHash)

	logged, err := svc.Login(ctx, "maria@example.com", "s3cretpass")
	require.NoError(t, err)
	require.Equal(t, u.ID, logged.ID)

	fetched, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", fetched.Email)
	require.NotNil(t, fetched.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "maria@example.com", "s3cretpass", "", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "MARIA@example.com", "otherpass1", "", "")
	require.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "   ", "s3cretpass", "", "")
	require.Error(t, err)

	_, err = svc.Register(ctx, "maria@example.com", "short", "", "")
	require.Error(t, err)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "maria@example.com", "s3cretpass", "", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "maria@example.com", "wrongpass1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFileRepositoryPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	ctx := context.Background()

	first := NewFileRepository(path)
	require.NoError(t, first.Create(ctx, &User{ID: "u1", Email: "a@b.c"}))

	second := NewFileRepository(path)
	u, err := second.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", u.Email)

	_, err = second.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
