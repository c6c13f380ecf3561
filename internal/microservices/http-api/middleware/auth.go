package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gamerental/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuthentication.
const (
	UserIDKey  = "userID"
	ClaimsKey  = "claims"
	TokenIDKey = "tokenID"
)

// RequireAuthentication is a Gin middleware for JWT authentication of API requests.
// It rejects the request with 401 unless the Authorization header carries a live bearer token.
func RequireAuthentication(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		// format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				slog.Error("token validation failed", "error", err, "path", c.Request.URL.Path)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID)
		c.Set(TokenIDKey, claims.TokenID)

		c.Next()
	}
}

// RequireOwner only lets the authenticated user through to their own
// resource, named by the path parameter param. The row need not exist.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := AuthenticatedUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		owner, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || uint(owner) != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized to access the specified resource"})
			return
		}

		c.Next()
	}
}

// AuthenticatedUserID returns the user id stored by RequireAuthentication.
func AuthenticatedUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// AuthenticatedClaims returns the claims stored by RequireAuthentication.
func AuthenticatedClaims(c *gin.Context) (*service.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}
