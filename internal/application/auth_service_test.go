package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmalhzn/portfolio-api/internal/testutil"
	"github.com/akmalhzn/portfolio-api/pkg/apperr"
	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

func newAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(
		testutil.NewFakeUserRepo(),
		helpers.NewJWTManager("test-secret", ttl),
		testutil.NewLogger(),
	)
}

func TestRegisterIssuesToken(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	token, err := svc.Register(ctx, "  Admin@Example.COM ", "hunter22", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.NotEmpty(t, claims.UserID)

	// The stored account carries the fixed admin role and a hashed password.
	u, err := svc.Users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
	assert.NotEqual(t, "hunter22", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "hunter22"))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin@example.com", "hunter22", "Admin")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "admin@example.com", "other", "Someone")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := newAuthService(time.Hour)

	for _, tt := range []struct{ email, password, name string }{
		{"", "pw", "name"},
		{"a@b.c", "", "name"},
		{"a@b.c", "pw", "  "},
	} {
		_, err := svc.Register(context.Background(), tt.email, tt.password, tt.name)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin@example.com", "hunter22", "Admin")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin@example.com", "hunter22")
		require.NoError(t, err)
		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin@example.com", "nope")
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "invalid credentials", apperr.MessageOf(err))
	})

	t.Run("unknown email reports the same failure", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "invalid credentials", apperr.MessageOf(err))
	})
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newAuthService(time.Hour)

	_, err := svc.Verify("")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.Verify("not.a.jwt")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	// Token signed with a different secret.
	other := helpers.NewJWTManager("different-secret", time.Hour)
	forged, _, err := other.Generate("id", "admin@example.com")
	require.NoError(t, err)
	_, err = svc.Verify(forged)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newAuthService(-time.Minute)

	token, err := svc.Register(context.Background(), "admin@example.com", "hunter22", "Admin")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}
