package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testContextWithAuth(header string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/watchlist", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c
}

func TestUserIDFromToken(t *testing.T) {
	secret := "test-secret"
	userID := uuid.New()

	t.Run("valid token round trips the subject", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		parsed, ok := userIDFromToken(testContextWithAuth("Bearer "+tokenStr), secret)
		require.True(t, ok)
		require.Equal(t, userID, parsed)
	})

	t.Run("missing header", func(t *testing.T) {
		_, ok := userIDFromToken(testContextWithAuth(""), secret)
		require.False(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenStr := signTestToken(t, "other-secret", jwt.MapClaims{
			"sub": userID.String(),
		})

		_, ok := userIDFromToken(testContextWithAuth("Bearer "+tokenStr), secret)
		require.False(t, ok)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, ok := userIDFromToken(testContextWithAuth("Bearer "+tokenStr), secret)
		require.False(t, ok)
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"sub": "not-a-uuid",
		})

		_, ok := userIDFromToken(testContextWithAuth("Bearer "+tokenStr), secret)
		require.False(t, ok)
	})

	t.Run("no secret configured", func(t *testing.T) {
		tokenStr := signTestToken(t, secret, jwt.MapClaims{
			"sub": userID.String(),
		})

		_, ok := userIDFromToken(testContextWithAuth("Bearer "+tokenStr), "")
		require.False(t, ok)
	})
}
