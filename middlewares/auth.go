package middlewares

import (
	"fmt"
	"strings"

	"lemonapi/configs"
	"lemonapi/repository"
	"lemonapi/services"
	"lemonapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and resolves the principal
// once for the whole request: identity from the token, role from group
// membership. Handlers downstream read the principal from the context
// and pass it to services explicitly.
func AuthMiddleware(cfg *configs.Config, users *repository.UserRepository, groups *services.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(401, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			c.JSON(401, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		role, err := groups.ResolveRole(user.ID)
		if err != nil {
			c.JSON(500, gin.H{"ok": false, "error": "resolve role failed"})
			c.Abort()
			return
		}

		c.Set(utils.PrincipalKey, services.Principal{
			UserID:  user.ID,
			IsStaff: user.IsStaff,
			Role:    role,
		})
		c.Next()
	}
}

// RequireRole gates a route group on the already-resolved role.
func RequireRole(roles ...services.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.CurrentPrincipal(c)
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(403, gin.H{"ok": false, "error": "forbidden"})
		c.Abort()
	}
}

// RequireStaff gates the group-administration surface.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentPrincipal(c).IsStaff {
			c.JSON(403, gin.H{"ok": false, "error": "staff only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
