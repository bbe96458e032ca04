package comment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/logs"
)

// CreateComment POST /api/posts/:id/comments
func CreateComment(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id")

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var input struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	cmt, err := Add(postID, accountID, input.Body)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le commentaire ne peut pas être vide"})
		case errors.Is(err, ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
			logs.LogJSON("ERROR", "Comment creation failed", map[string]interface{}{
				"error":     err.Error(),
				"route":     route,
				"accountID": accountID,
				"postID":    postID,
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commentaire ajouté avec succès",
		"comment": cmt,
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
