package middlewares

import (
	"AgendaDental/models"
	"AgendaDental/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store claims in the context.
type contextKey string

const claimsKey contextKey = "claims"

// TokenAuthMiddleware validates the bearer token from the Authorization
// header and adds the identity claims to the request context. Requests with a
// missing or invalid token are rejected before any handler runs.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token, models.RoleAdmin, models.RolePatient)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), claimsKey, claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to callers with the specified role.
// Applied after TokenAuthMiddleware.
func RoleAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ExtractClaimsFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found in context"})
			c.Abort()
			return
		}

		if claims.Role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ExtractClaimsFromContext retrieves the token claims from the context.
func ExtractClaimsFromContext(ctx context.Context) (*utils.TokenClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*utils.TokenClaims)
	if !ok {
		return nil, errors.New("claims not found in context")
	}
	return claims, nil
}

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("Invalid Authorization header format")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
