package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/token"
)

// AuthMiddleware exige un Bearer token valide et résout le compte associé.
// Expose user_id et email sur le contexte pour les handlers en aval.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token requis"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := token.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			return
		}

		acc, err := account.FindByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			return
		}

		c.Set("user_id", acc.ID)
		c.Set("email", acc.Email)
		c.Next()
	}
}
