package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// Context keys set by AuthMiddleWare for downstream handlers.
const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

// AuthMiddleWare verifies the bearer ID token with the identity provider and
// attaches the caller's uid and email to the request context.
func AuthMiddleWare(verifier usecasecontract.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format 'Bearer <token>'"})
			return
		}

		claims, err := verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUserIDKey, claims.UID)
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}
