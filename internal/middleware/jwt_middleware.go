package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/print_api/internal/utils"
)

// JWTMiddleware guards the catalog admin routes.
type JWTMiddleware struct {
	secret  string
	limiter *FailedAuthLimiter
}

func NewJWTMiddleware(secret string) *JWTMiddleware {
	return &JWTMiddleware{
		secret:  secret,
		limiter: NewFailedAuthLimiter(5, time.Minute),
	}
}

func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if m.limiter.Blocked(ip) {
			utils.Error(c, 429, "RATE_LIMITED", "Too many invalid authentication attempts")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(m.secret, parts[1])
		if err != nil {
			m.limiter.Fail(ip)
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
