package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParseRoundtrip(t *testing.T) {
	m := NewJWTManager("secret", 7*24*time.Hour)

	token, exp, err := m.Generate("user-1", "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a := NewJWTManager("secret-a", time.Hour)
	b := NewJWTManager("secret-b", time.Hour)

	token, _, err := a.Generate("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = b.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, _, err := m.Generate("user-1", "a@b.c")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongAlgorithm(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	// alg=none token with otherwise plausible claims
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := m.Parse(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
