package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contactnest/internal/apperrors"
	"contactnest/internal/models"
	"contactnest/internal/service"
)

const principalKey = "principal"

// Authenticate extracts the bearer token, resolves it to a live user via the
// access guard and stores the user in the request context. A missing header
// is reported distinctly from an invalid or expired token.
func Authenticate(guard *service.AccessGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrTokenMissing.Error(),
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization format, use: Bearer <token>",
			})
			c.Abort()
			return
		}

		principal, err := guard.ResolvePrincipal(tokenString)
		if err != nil {
			// Expired vs invalid vs inactive keep their own messages
			c.JSON(apperrors.StatusCode(err), gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin enforces the admin-only policy. Must run after Authenticate.
func RequireAdmin(guard *service.AccessGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrTokenMissing.Error(),
			})
			c.Abort()
			return
		}

		if err := guard.Check(principal, service.PolicyAdminOnly, nil); err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelfOrAdmin enforces the self-or-admin policy against the :id path
// parameter. Must run after Authenticate.
func RequireSelfOrAdmin(guard *service.AccessGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrTokenMissing.Error(),
			})
			c.Abort()
			return
		}

		targetID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid user id",
			})
			c.Abort()
			return
		}

		if err := guard.Check(principal, service.PolicySelfOrAdmin, &targetID); err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the principal resolved by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*models.User)
	return principal, ok
}
