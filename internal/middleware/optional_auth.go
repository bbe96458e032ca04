package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/token"
)

// OptionalAuthMiddleware résout l'identité si un token valide est fourni,
// et laisse passer en anonyme dans tous les autres cas (user_id absent).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := token.Verify(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		acc, err := account.FindByEmail(email)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", acc.ID)
		c.Set("email", acc.Email)
		c.Next()
	}
}
