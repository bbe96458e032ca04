package like

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/logs"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

// ToggleLike POST /api/posts/:id/like
func ToggleLike(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id")

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	liked, err := Toggle(postID, accountID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Like toggle failed", map[string]interface{}{
			"error":     err.Error(),
			"route":     route,
			"accountID": accountID,
			"postID":    postID,
		})
		return
	}

	count, err := CountForPost(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Like count failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":      liked,
		"like_count": count,
	})
}

// GetLikeStatus GET /api/posts/:id/likes
func GetLikeStatus(c *gin.Context) {
	route := c.FullPath()
	accountID := c.GetUint("user_id") // 0 si non connecté

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	exists, err := post.Exists(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		return
	}

	response, err := Status(postID, accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Like status failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return 0, false
	}
	return uint(id), true
}
