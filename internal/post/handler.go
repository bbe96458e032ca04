package post

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ClaraVasseur/InstaLite-Back/internal/logs"
	"github.com/ClaraVasseur/InstaLite-Back/internal/storage"
)

// CreatePost gère la création d'un nouveau post avec média
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id")

	caption := c.PostForm("caption")

	file, header, err := c.Request.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucun média fourni", "details": err.Error()})
		return
	}
	defer file.Close()

	// Validation du type de fichier
	ext := strings.ToLower(filepath.Ext(header.Filename))
	validExtensions := map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true,
		".gif": true, ".webp": true, ".heic": true,
	}
	if !validExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Extension de fichier invalide"})
		return
	}

	// Génération d'un nom de fichier unique
	filename := fmt.Sprintf("post_%s%s", uuid.New().String(), ext)
	contentType := header.Header.Get("Content-Type")

	mediaRef, err := storage.Store(file, filename, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'upload du média"})
		logs.LogJSON("ERROR", "Media ingest failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"accountID": accountID,
		})
		return
	}

	newPost, err := Create(accountID, mediaRef, caption)
	if err != nil {
		// Si l'insertion échoue, on tente de supprimer le média déjà stocké
		_ = storage.Delete(mediaRef)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.LogJSON("ERROR", "Post creation failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"accountID": accountID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post créé avec succès",
		"post":    newPost,
	})
}

// UpdatePost modifie la légende d'un post (propriétaire uniquement)
func UpdatePost(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id")

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var input struct {
		Caption string `json:"caption"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	updated, err := UpdateCaption(postID, accountID, input.Caption)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Vous n'êtes pas autorisé à modifier ce post"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la modification du post"})
			logs.LogJSON("ERROR", "Post update failed", map[string]interface{}{
				"error":     err.Error(),
				"route":     route,
				"accountID": accountID,
				"postID":    postID,
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post modifié avec succès",
		"post":    updated,
	})
}

// DeletePost supprime un post et son média (propriétaire uniquement)
func DeletePost(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id")

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	p, err := Get(postID)
	if err == nil && p.AccountID == accountID && p.MediaRef != "" {
		if err := storage.Delete(p.MediaRef); err != nil {
			// On continue même en cas d'erreur pour supprimer l'entrée en BDD
			logs.LogJSON("WARN", "Media delete failed", map[string]interface{}{
				"error":    err.Error(),
				"route":    route,
				"postID":   postID,
				"mediaRef": p.MediaRef,
			})
		}
	}

	if err := Delete(postID, accountID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Vous n'êtes pas autorisé à supprimer ce post"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression du post"})
			logs.LogJSON("ERROR", "Post delete failed", map[string]interface{}{
				"error":     err.Error(),
				"route":     route,
				"accountID": accountID,
				"postID":    postID,
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post supprimé avec succès",
	})
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return 0, false
	}
	return uint(id), true
}
