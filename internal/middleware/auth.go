package middleware

import (
	"assessment_backend/internal/config"
	"assessment_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stashes its claims. Role data
// is carried, not enforced: permission decisions belong to the frontend menus
// fed by role menu-access lists.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		// Demo tokens are opaque, not JWTs. Any bearer is accepted so the
		// demo frontend can navigate; the services behind it refuse writes
		// anyway.
		if !cfg.Database.Configured() {
			c.Set("user", &util.Claims{UserID: 1, Email: "admin@esigma.com", RoleID: 1})
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
