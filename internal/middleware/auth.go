package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/pkg/auth"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/httputil"
)

const ContextClaims = "claims"

type AuthMiddleware struct {
	jwt auth.JWTService
}

func NewAuthMiddleware(jwt auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// Authenticate verifies the bearer token and stores the claims in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.RespondWithError(c, apperrors.Authentication("missing authorization header", nil))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httputil.RespondWithError(c, apperrors.Authentication("invalid authorization format", nil))
			c.Abort()
			return
		}

		claims, err := m.jwt.ValidateToken(parts[1])
		if err != nil {
			httputil.RespondWithError(c, apperrors.Authentication("invalid token", nil))
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireRole restricts the route to the given roles
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			httputil.RespondWithError(c, apperrors.Authentication("not authenticated", nil))
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		httputil.RespondWithError(c, apperrors.Authentication("insufficient role", nil))
		c.Abort()
	}
}

// ClaimsFromContext extracts the authenticated principal, nil if absent
func ClaimsFromContext(c *gin.Context) *model.TokenClaims {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil
	}
	claims, ok := v.(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
