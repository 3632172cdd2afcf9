package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Principal identifies the caller resolved from a bearer token.
type Principal struct {
	UserID string
}

// TokenVerifier resolves a bearer token to a principal. The handlers only
// depend on this interface, so a real verifier can replace the stub without
// touching handler logic.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

// StubVerifier accepts any non-empty bearer token and resolves it to a demo
// principal. Real token verification is out of scope for this service.
type StubVerifier struct{}

func (StubVerifier) Verify(_ context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, errors.New("empty token")
	}
	return Principal{UserID: "demo_user"}, nil
}

const principalKey = "principal"

func authMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}
