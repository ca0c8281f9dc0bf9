package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ride-sharing-service/internal/config"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

func newAuthFixture(t *testing.T) (*AuthService, *mockUserRepo, *mockDriverRepo) {
	t.Helper()
	users := newMockUserRepo()
	drivers := newMockDriverRepo()
	cfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 15,
		BcryptCost:            bcrypt.MinCost,
	}
	return NewAuthService(cfg, users, drivers), users, drivers
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("user account", func(t *testing.T) {
		svc, _, drivers := newAuthFixture(t)

		user, token, exp, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22", domain.RoleUser)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEmpty(t, token)
		assert.False(t, exp.IsZero())
		// Never store the plaintext.
		assert.NotEqual(t, "hunter22", user.PasswordHash)

		all, err := drivers.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("driver account gets a directory entry", func(t *testing.T) {
		svc, _, drivers := newAuthFixture(t)

		user, _, _, err := svc.Register(ctx, "Bob", "bob@example.com", "hunter22", domain.RoleDriver)
		require.NoError(t, err)

		driver, err := drivers.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bob", driver.Name)
		assert.True(t, driver.Available)
	})

	t.Run("admin role is not self-service", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, _, _, err := svc.Register(ctx, "Eve", "eve@example.com", "hunter22", domain.RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22", domain.RoleUser)
		require.NoError(t, err)

		_, _, _, err = svc.Register(ctx, "Mallory", "alice@example.com", "other-pass", domain.RoleUser)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issued token carries the account role", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		registered, _, _, err := svc.Register(ctx, "Bob", "bob@example.com", "hunter22", domain.RoleDriver)
		require.NoError(t, err)

		user, token, _, err := svc.Login(ctx, "bob@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		principal, err := svc.TokenManager().Verify(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, principal.SubjectID)
		assert.Equal(t, domain.RoleDriver, principal.Role)
	})

	t.Run("wrong password and unknown email reject identically", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		_, _, _, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22", domain.RoleUser)
		require.NoError(t, err)

		_, _, _, wrongPass := svc.Login(ctx, "alice@example.com", "nope")
		require.Error(t, wrongPass)
		_, _, _, unknown := svc.Login(ctx, "ghost@example.com", "nope")
		require.Error(t, unknown)

		assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(wrongPass).Code)
		assert.Equal(t, apperrors.ToDomainError(wrongPass).Message, apperrors.ToDomainError(unknown).Message)
	})
}
