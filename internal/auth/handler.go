package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/account"
	"github.com/ClaraVasseur/InstaLite-Back/internal/config"
	"github.com/ClaraVasseur/InstaLite-Back/internal/logs"
	"github.com/ClaraVasseur/InstaLite-Back/internal/token"
)

// Signup : Inscription
func Signup(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs requis manquants"})
		return
	}

	newAccount, err := account.Register(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email déjà utilisé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'inscription"})
		logs.LogJSON("ERROR", "Signup failed", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	logs.LogJSON("INFO", "Account created", map[string]interface{}{
		"route":     route,
		"accountID": newAccount.ID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message": "Utilisateur inscrit",
		"user":    newAccount,
	})
}

// Login : Connexion, renvoie un token d'accès
func Login(c *gin.Context) {
	route := c.FullPath()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	acc, err := account.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			// Même réponse pour email inconnu et mot de passe erroné
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la connexion"})
		logs.LogJSON("ERROR", "Login failed", map[string]interface{}{
			"error": err.Error(),
			"route": route,
		})
		return
	}

	ttl := time.Duration(config.LoadConfig().TokenTTLMin) * time.Minute
	accessToken, err := token.Issue(acc.Email, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la génération du token"})
		logs.LogJSON("ERROR", "Token issuance failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"accountID": acc.ID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

// Me : identité du compte authentifié
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetUint("user_id"),
		"email": c.GetString("email"),
	})
}
