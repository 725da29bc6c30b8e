package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("round trip preserves the user id", func(t *testing.T) {
		token, err := GenerateToken(42, "secret")
		require.NoError(t, err)

		claims, err := ValidateToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "42", claims.Subject)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateToken(42, "secret")
		require.NoError(t, err)

		_, err = ValidateToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := &Claims{
			UserID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = ValidateToken(token, "secret")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("non-HMAC signing method is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 42})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateToken(signed, "secret")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
