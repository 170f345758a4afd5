package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const userIDContextKey = "userID"

// userIDFromToken pulls the subject out of a Bearer token if one is
// present and valid. Watchlist rows are scoped per user, so the authed
// routes require it; the request log only records it opportunistically.
func userIDFromToken(c *gin.Context, secret string) (uuid.UUID, bool) {
	if secret == "" {
		return uuid.Nil, false
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return uuid.Nil, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, false
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	userID, ok := userIDFromToken(c, m.JwtSecret)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("missing or invalid auth token"), c, 401)
		return
	}
	c.Set(userIDContextKey, userID)
	c.Next()
}

func userIDFromContext(c *gin.Context) (uuid.UUID, error) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil, fmt.Errorf("no user id on request context")
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("malformed user id on request context")
	}
	return userID, nil
}
