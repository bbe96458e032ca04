package feed

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ClaraVasseur/InstaLite-Back/internal/comment"
	"github.com/ClaraVasseur/InstaLite-Back/internal/logs"
	"github.com/ClaraVasseur/InstaLite-Back/internal/post"
)

// GetFeed GET /api/posts
func GetFeed(c *gin.Context) {
	route := c.FullPath()
	requesterID := c.GetUint("user_id") // 0 si non connecté

	views, err := List(requesterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du fil"})
		logs.LogJSON("ERROR", "Feed assembly failed", map[string]interface{}{
			"error":       err.Error(),
			"route":       route,
			"requesterID": requesterID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// GetPostDetail GET /api/posts/:id
func GetPostDetail(c *gin.Context) {
	route := c.FullPath()
	requesterID := c.GetUint("user_id")

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return
	}

	view, comments, err := Detail(uint(postID), requesterID)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération du post"})
		logs.LogJSON("ERROR", "Post detail failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     view,
		"comments": comments,
	})
}

// GetComments GET /api/posts/:id/comments
func GetComments(c *gin.Context) {
	route := c.FullPath()

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de post invalide"})
		return
	}

	exists, err := post.Exists(uint(postID))
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

	comments, err := comment.ForPost(uint(postID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		logs.LogJSON("ERROR", "Comment listing failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	emails := map[uint]string{}
	views := make([]CommentView, 0, len(comments))
	for _, cmt := range comments {
		email, err := emailFor(cmt.AccountID, emails)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
			logs.LogJSON("ERROR", "Comment author lookup failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"postID": postID,
			})
			return
		}
		views = append(views, CommentView{
			ID:           cmt.ID,
			CreatedAt:    cmt.CreatedAt,
			PostID:       cmt.PostID,
			AccountID:    cmt.AccountID,
			AccountEmail: email,
			Body:         cmt.Body,
		})
	}

	c.JSON(http.StatusOK, gin.H{"comments": views})
}
