package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-storefront-api/internal/domains/users/adapters/memory"
	"github.com/Apurer/go-storefront-api/internal/domains/users/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/users/ports"
)

func TestRegister_DefaultsToUserRole(t *testing.T) {
	svc := NewService(memory.NewRepository())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hashed-secret",
	})
	require.NoError(t, err)
	require.Equal(t, []string{domain.RoleUser}, user.Roles)
	require.False(t, user.IsAdmin())
}

func TestRegister_AdminRole(t *testing.T) {
	svc := NewService(memory.NewRepository())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "hashed-secret",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.True(t, user.IsAdmin())
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "x",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "x",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "x",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "alice@example.com", Password: "x",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "not-an-email", Password: "x",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "x", Role: "OWNER",
	})
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestIsAdmin(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "root", Email: "root@example.com", Password: "x", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	admin, err := svc.IsAdmin(context.Background(), "root")
	require.NoError(t, err)
	require.True(t, admin)

	_, err = svc.IsAdmin(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "x",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "alice"))
	require.ErrorIs(t, svc.Delete(context.Background(), "alice"), ports.ErrNotFound)
}
